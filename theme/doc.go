// Package theme defines the visual appearance of rendered log lines.
//
// A Theme maps each level to a badge color, assigns colors to the name,
// message, and field components, and fixes the column widths used for
// alignment. Two themes are built in: Colorized and Plain. Plain has the
// identical layout with every color set to NoColor, so it never produces
// escape bytes.
//
// Default selects between the two by probing the terminal with
// ColorSupported, which honors the NO_COLOR convention and the
// REDLOG_FORCE_COLOR override. The probe is consulted once when the
// logger registry initializes; explicitly setting a theme afterwards
// always wins over the probe.
package theme
