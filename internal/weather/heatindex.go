package weather

import "math"

// heatIndexThreshold is the temperature below which the Rothfusz regression
// is invalid and the heat index equals the ambient temperature.
const heatIndexThreshold = 27.0

// HeatIndex computes the perceived temperature from dry-bulb temperature
// (Celsius) and relative humidity (percent) using the Rothfusz regression
// adapted for Celsius inputs. The result is rounded to one decimal place.
func HeatIndex(temperatureC, humidityPct float64) float64 {
	if temperatureC < heatIndexThreshold {
		return temperatureC
	}

	t := temperatureC
	rh := humidityPct

	hi := -8.78469475556 +
		1.61139411*t +
		2.33854883889*rh +
		-0.14611605*t*rh +
		-0.012308094*t*t +
		-0.0164248277778*rh*rh +
		0.002211732*t*t*rh +
		0.00072546*t*rh*rh +
		-0.000003582*t*t*rh*rh

	return math.Round(hi*10) / 10
}
