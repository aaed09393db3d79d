// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type TranslatorInterface interface {
	// Sprintf renders a user-facing message template in the configured
	// locale.
	Sprintf(key message.Reference, args ...interface{}) string
}

// Translator renders user-facing error text. It has no behavioral
// effect beyond message formatting.
type Translator struct {
	printer *message.Printer
}

func (t *Translator) Sprintf(key message.Reference, args ...interface{}) string {
	return t.printer.Sprintf(key, args...)
}

func NewTranslator(locale string) *Translator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	return &Translator{
		printer: message.NewPrinter(tag),
	}
}
