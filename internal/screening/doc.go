// Package screening provides rule-based clinical screening of chat messages.
//
// Every message from the chat pipeline passes through the screener, which runs
// deterministic weighted-pattern detectors for anxiety conditions, crisis
// language, anxiety triggers, cognitive distortions, and psychosis indicators.
// Pattern tables are data-driven and compiled once at startup; all detectors
// are pure functions of the message text and safe for concurrent use.
//
// Results carry only scores, tier labels, and pattern descriptions. Message
// content never appears in results, logs, or metrics.
package screening
