package config

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys used by the five-element analysis string and the CLI's
// rendered labels. Registered once at package init against both
// supported locales; callers look them up through Printer.
const (
	MsgStrengthStrong  = "strength.strong"
	MsgStrengthWeak    = "strength.weak"
	MsgStrengthNeutral = "strength.neutral"
)

func init() {
	message.SetString(language.English, MsgStrengthStrong,
		"the day master is strong: its own element and its generator together carry %.0f%% of the chart's weighted score")
	message.SetString(language.English, MsgStrengthWeak,
		"the day master is weak: its own element and its generator together carry only %.0f%% of the chart's weighted score")
	message.SetString(language.English, MsgStrengthNeutral,
		"the day master is neutral: its own element and its generator carry %.0f%% of the chart's weighted score")

	message.SetString(language.SimplifiedChinese, MsgStrengthStrong,
		"日主偏强：本气及印星合计占全局权重的 %.0f%%")
	message.SetString(language.SimplifiedChinese, MsgStrengthWeak,
		"日主偏弱：本气及印星合计仅占全局权重的 %.0f%%")
	message.SetString(language.SimplifiedChinese, MsgStrengthNeutral,
		"日主中和：本气及印星合计占全局权重的 %.0f%%")
}

// Printer resolves cfg.Locale to a *message.Printer, falling back to
// English for an unrecognized tag.
func (cfg *Config) Printer() *message.Printer {
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}
