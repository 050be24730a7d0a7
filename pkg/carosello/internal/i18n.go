package internal

import (
	"os"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	localizerOnce sync.Once
	localizer     *i18n.Localizer
)

// getLocalizer builds the toolkit localizer on first use. All messages
// carry default translations so no message files are required; hosts can
// influence language via the standard LANG environment variable.
func getLocalizer() *i18n.Localizer {
	localizerOnce.Do(func() {
		bundle := i18n.NewBundle(language.English)
		localizer = i18n.NewLocalizer(bundle, os.Getenv("LANG"), language.English.String())
	})
	return localizer
}

// Localize resolves a message with optional template data, falling back
// to the message's default translation.
func Localize(message *i18n.Message, data map[string]interface{}) string {
	text, err := getLocalizer().Localize(&i18n.LocalizeConfig{
		DefaultMessage: message,
		TemplateData:   data,
	})
	if err != nil {
		GetInternalLogger().Warn("Localization failed", "id", message.ID, "error", err)
		return message.Other
	}
	return text
}
