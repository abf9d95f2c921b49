package quadrature

// IntegrateStrip applies the composite midpoint rule to one region. Every cell
// is visited exactly once; a NaN or infinity from f is returned as-is.
func IntegrateStrip(f Integrand, reg Region) float64 {
	dx := (reg.X1 - reg.X0) / float64(reg.XSteps)
	dy := (reg.Y1 - reg.Y0) / float64(reg.YSteps)

	var sum float64
	for i := 0; i < reg.XSteps; i++ {
		x := reg.X0 + (float64(i)+0.5)*dx
		for j := 0; j < reg.YSteps; j++ {
			sum += f(x, reg.Y0+(float64(j)+0.5)*dy)
		}
	}
	return sum * dx * dy
}
