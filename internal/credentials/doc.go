// Package credentials resolves the NASA API key for starhop.
//
// Resolution order:
//  1. Explicit CLI value
//  2. Environment variable
//  3. Per-user key file written by the installer
//
// The shared DEMO_KEY sentinel is rejected from any source, case
// insensitively, so shared demo credentials never eat a user's quota.
//
// Mask redacts keys for log output.
package credentials
