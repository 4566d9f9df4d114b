// Package ui provides terminal UI components for uptop's CLI output.
//
// The package includes the status table, branded header, a spinner for
// one-shot commands, and the shared color palette, using the Lip Gloss
// library for consistent terminal styling across all commands.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Target is up
//	ColorError     (red)    - Target is down
//	ColorWarning   (yellow) - Degraded or noteworthy state
//	ColorInfo      (cyan)   - Branding and in-progress work
//	ColorPrimary   (white)  - Primary content
//	ColorSecondary (blue)   - Secondary content
//	ColorMuted     (gray)   - Timestamps, dividers, hints
package ui
