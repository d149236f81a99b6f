// Package yield derives dividend analytics from per-security payment history.
//
// It is a stateless engine over already retrieved records: callers provide
// the ordered dividend observations of a ticker and get back each payment's
// classification together with its annualized and normalized rates.
//
// The core functionalities include:
//   - Classification: every payment is Initial, Regular or Special. Special
//     detection is a pluggable [Policy] ([General] or [CEF]).
//   - Frequency Detection: the payments-per-year of a Regular payment is
//     confirmed by the gap to the next payment of the cadence, the latest
//     payment inherits the frequency of the one before it.
//   - Annualization: amount times frequency, normalized to a weekly
//     equivalent rate by a named [Normalizer].
//   - Volatility: the trailing coefficient of variation of annualized
//     Regular payments, used as a dividend stability index.
//
// Price trends and premium/discount statistics live in the trend package,
// composite ranking across securities in the rank package.
//
// All functions are pure: they read their inputs, allocate their outputs and
// share no state, so independent tickers can be processed concurrently (see
// [ClassifyAll]).
package yield
