package main

import "math"

/*
Electrical performance of the PV module: angular reflection loss through
the incidence angle modifier, cell temperature from the NOCT model, and
the temperature-corrected power output.
*/

// PVModule holds the module constants of the electrical model.
type PVModule struct {
	// nominal efficiency at STC, -
	eta float64
	// nominal operating cell temperature, degree C
	noct float64
	// angular loss coefficient, -
	alpha_r float64
	// power temperature coefficient, 1/K
	alpha_p float64
}

func default_pv_module() PVModule {
	return PVModule{
		eta:     get_eta_stc(),
		noct:    get_noct(),
		alpha_r: get_alpha_r(),
		alpha_p: get_alpha_p(),
	}
}

// PVPerformance holds the electrical result of one sample.
type PVPerformance struct {
	// incidence angle modifier, -
	iam float64
	// effective irradiance after angular loss, W/m2
	s_eff float64
	// cell temperature, degree C
	t_cell float64
	// output power, W/m2
	p_out float64
	// counterfactual power at a 25 degree C cell, W/m2
	p_ref_25 float64
	// irradiance lost to angular reflection, W/m2
	loss_angular float64
	// power lost to cell heating, W/m2 (negative when the cell runs cool)
	loss_thermal float64
	// power gained by holding the cell at 25 degree C, W/m2 (floored at 0)
	cooling_benefit float64
}

/*
Calculate the electrical performance.

Args:

	i_c: total incident irradiance, W/m2
	cos_theta: cosine of the angle of incidence, -
	t_amb: ambient temperature, degree C

Returns:

	PVPerformance of the sample

Notes:

	IAM = [1 - exp(-cos(theta)/alpha_r)] / [1 - exp(-1/alpha_r)], exactly
	1 at normal incidence and 0 at grazing incidence.

	T_cell = T_amb + (NOCT - 20)/0.8 * S[kW/m2].

	P_out = eta*S * [1 + alpha_p*(T_cell - 25)]. The thermal loss
	eta*S - P_out goes negative when the cell runs below 25 degree C;
	that is a property of the model, not an error. The cooling benefit is
	the thermal loss floored at zero: a cell already at or below 25
	degree C gains nothing from being cooled to 25.
*/
func (m PVModule) calc_performance(i_c float64, cos_theta float64, t_amb float64) PVPerformance {

	// incidence angle modifier, -
	iam := _get_iam(cos_theta, m.alpha_r)

	// effective irradiance, W/m2
	s := i_c * iam

	// cell temperature, degree C
	t_cell := t_amb + (m.noct-20.0)/0.8*(s/1000.0)

	// counterfactual power at STC cell temperature, W/m2
	p_ref_25 := m.eta * s

	// output power, W/m2
	p_out := p_ref_25 * (1.0 + m.alpha_p*(t_cell-25.0))
	if p_out < 0.0 {
		p_out = 0.0
	}

	loss_thermal := p_ref_25 - p_out

	cooling_benefit := 0.0
	if t_cell > 25.0 {
		cooling_benefit = loss_thermal
	}

	return PVPerformance{
		iam:             iam,
		s_eff:           s,
		t_cell:          t_cell,
		p_out:           p_out,
		p_ref_25:        p_ref_25,
		loss_angular:    i_c - s,
		loss_thermal:    loss_thermal,
		cooling_benefit: cooling_benefit,
	}
}

/*
Calculate the incidence angle modifier.

Args:

	cos_theta: cosine of the angle of incidence, -
	alpha_r: angular loss coefficient, -

Returns:

	IAM, - (0 when the sun is at or behind the panel plane)
*/
func _get_iam(cos_theta float64, alpha_r float64) float64 {
	if cos_theta <= 0.0 {
		return 0.0
	}
	return (1.0 - math.Exp(-cos_theta/alpha_r)) / (1.0 - math.Exp(-1.0/alpha_r))
}
