// Package bootstrap implements John T. Lowry's Bootstrap Approach to
// light-aircraft performance modeling: deriving an airframe's drag and
// power "data plate" from a small number of flight-test points, then
// evaluating climb, glide, and characteristic-airspeed performance from
// that plate at any weight, altitude, and temperature.
//
// The model is built from four layers, one file per layer:
//
//   - atmosphere.go: the 1962 US Standard Atmosphere and CAS/TAS conversions.
//   - plate.go: BuildPlate fits a DataPlate's drag and thrust coefficients
//     from flight-test data (or accepts them directly via overrides).
//   - composites.go: Evaluate folds a DataPlate, weight, altitude, and
//     temperature into eight scalar composites (E, F, G, H, K, Q, R, U).
//   - vspeeds.go and performance.go: Solve and EvaluateAt read off
//     characteristic airspeeds and point performance from those composites.
//
// All public functions are pure: none of DataPlate, Composites, VSpeeds,
// or Performance hold a mutable reference to a previous evaluation, so a
// single DataPlate can be queried concurrently from any number of
// goroutines without synchronization.
//
// Quantities carry their physical dimension (units.go) so that a mismatched
// unit panics immediately rather than silently producing a wrong number
// several steps downstream. BuildPlate's inputs are the exception: a
// mismatch there comes back as an ErrDimensionMismatch error.
package bootstrap
