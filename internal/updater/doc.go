// Package updater checks GitHub Releases for newer cabcommon builds. The
// result is cached for a day under the user's config directory and powers a
// non-blocking startup banner; the binary itself is installed out of band.
package updater
