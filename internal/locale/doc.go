// Package locale provides the localized user-facing dialog strings for
// every launcher failure state, with Korean as the default language and
// English as the fallback.
package locale
