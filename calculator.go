package lpc

// checkBounds rejects an order or sample count beyond the Calculator's
// configured caps before any buffer is touched, so a rejected call never
// leaves partial output behind.
func (c *Calculator) checkBounds(order, numSamples int) error {
	if order < 1 || numSamples < 1 {
		return ErrInvalidArgument
	}
	if uint32(order) > c.cfg.MaxOrder {
		return ErrExceedMaxOrder
	}
	if uint32(numSamples) > c.cfg.MaxNumSamples {
		return ErrExceedMaxNumSamples
	}
	return nil
}

// CalculateLPCCoefficients windows x, computes its autocorrelation, and
// runs Levinson-Durbin to produce an order-p predictor. out must have
// length >= p and receives a[1..p]; the implicit leading a[0]=1 is not
// written, matching the historical on-wire layout this method has always
// used.
func (c *Calculator) CalculateLPCCoefficients(x []float64, p int, w Window, out []float64) error {
	if err := c.checkBounds(p, len(x)); err != nil {
		return err
	}
	if len(out) < p {
		return ErrInvalidArgument
	}

	windowed := c.windowed[:len(x)]
	if err := applyWindow(windowed, x, w); err != nil {
		return err
	}
	if err := autocorrelate(c.autocorr, windowed, p+1); err != nil {
		return err
	}
	if _, err := levinsonDurbin(c.autocorr, p, c.a, c.parcor, c.u, c.v); err != nil {
		return err
	}

	copy(out[:p], c.a[1:p+1])
	return nil
}

// CalculateLPCCoefficientsAF windows x and minimizes the mean absolute
// residual by iteratively reweighted least squares, seeded from
// Levinson-Durbin. out must have length >= p and receives a[0..p-1]; no
// leading 1 is ever part of this estimator's internal representation.
func (c *Calculator) CalculateLPCCoefficientsAF(x []float64, p, maxIter int, w Window, out []float64) error {
	if err := c.checkBounds(p, len(x)); err != nil {
		return err
	}
	if len(out) < p || maxIter < 1 {
		return ErrInvalidArgument
	}

	windowed := c.windowed[:len(x)]
	if err := applyWindow(windowed, x, w); err != nil {
		return err
	}
	if err := autocorrelate(c.autocorr, windowed, p+1); err != nil {
		return err
	}
	if _, err := levinsonDurbin(c.autocorr, p, c.a, c.parcor, c.u, c.v); err != nil {
		return err
	}
	// Seed the IRLS solver from the Levinson-Durbin predictor: LD's a[i+1]
	// is exactly the AF solver's a[i] under its a[0..p-1] (no leading 1)
	// convention, so no sign or index adjustment beyond the shift is needed.
	for i := 0; i < p; i++ {
		c.seed[i] = c.a[i+1]
	}

	dim := p + 1
	m := c.r[:dim]
	for i := range m {
		m[i] = m[i][:dim]
	}

	if err := auxFunctionSolve(windowed, p, maxIter, c.seed, c.weight, m, c.rhs, c.diagInv); err != nil {
		return err
	}

	copy(out[:p], c.seed[:p])
	return nil
}

// CalculateLPCCoefficientsBurg estimates an order-p predictor by Burg's
// lattice method, without windowing. out must have length >= p and
// receives a[0..p-1], no leading 1.
func (c *Calculator) CalculateLPCCoefficientsBurg(x []float64, p int, out []float64) error {
	if err := c.checkBounds(p, len(x)); err != nil {
		return err
	}
	if len(out) < p {
		return ErrInvalidArgument
	}

	dim := p + 1
	m := c.r[:dim]
	for i := range m {
		m[i] = m[i][:dim]
	}

	if err := burgSolve(x, p, m, c.a); err != nil {
		return err
	}

	copy(out[:p], c.a[1:p+1])
	return nil
}
