package i18n

import "strings"

// Translator retrieves localized messages for error codes.
// data provides the values substituted into the message template (for
// example "field", "expected" or "keys").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	return render(t.template(code), data)
}

func (t dictTranslator) template(code string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です: {field} は {expected} 型である必要がありますが、値 `{got}` が渡されました"
		case "uninitialized":
			return "null 非許容のプロパティ {field} が初期化されていません"
		case "unknown_properties":
			return "プロパティ `{keys}` は {schema} に存在しません"
		case "immutable_write":
			return "イミュータブルなデータ転送オブジェクトのプロパティ {field} は変更できません"
		case "duplicate_key":
			return "キーが重複しています: {key}"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type: expected {field} to be of type {expected}, instead got value `{got}`"
		case "uninitialized":
			return "non-nullable property {field} has not been initialized"
		case "unknown_properties":
			return "properties `{keys}` not found on {schema}"
		case "immutable_write":
			return "cannot change the value of property {field} on an immutable data transfer object"
		case "duplicate_key":
			return "duplicate key: {key}"
		}
	}
	return code
}

// render replaces {name} placeholders with values from data. Unknown
// placeholders are left untouched.
func render(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
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
