package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "index" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "truncated":
			return "出力が容量で打ち切られました"
		case "key_space_exhausted":
			return "フォールバックキーを使い切りました"
		case "unsupported_input":
			return "フラット形式以外の入力は扱えません"
		case "parse_error":
			return "解析エラー"
		case "invalid_format":
			return "形式が不正です"
		case "domain_range":
			return "値が範囲外です"
		}
	default: // "en"
		switch code {
		case "truncated":
			return "output clamped at capacity"
		case "key_space_exhausted":
			return "fallback key space exhausted"
		case "unsupported_input":
			return "input is not a flat structure"
		case "parse_error":
			return "parse error"
		case "invalid_format":
			return "invalid format"
		case "domain_range":
			return "value out of range"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
