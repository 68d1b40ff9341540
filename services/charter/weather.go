package charter

import "fmt"

// FetchWeather is a deterministic placeholder for a forecast integration
// (OpenMeteo planned). It always reports clear conditions; callers must not
// treat its output as load-bearing safety data.
func FetchWeather(location, date string) string {
	return fmt.Sprintf("Weather in %s on %s: Clear skies, Wind 10kn (Safe).", location, date)
}
