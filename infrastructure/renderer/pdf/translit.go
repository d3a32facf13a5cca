package pdf

import (
	"strings"

	"github.com/go-pdf/fpdf"
)

var cyrillic = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e", 'ж': "zh",
	'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n", 'о': "o",
	'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts",
	'ч': "ch", 'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu",
	'я': "ya",
	'₽': "RUB", '№': "No",
}

// transliterate prepara o texto para as fontes padrão, que não têm glifos cirílicos
func transliterate(pdf *fpdf.Fpdf) func(string) string {
	latin := pdf.UnicodeTranslatorFromDescriptor("")

	return func(s string) string {
		var b strings.Builder
		for _, r := range s {
			lower := []rune(strings.ToLower(string(r)))[0]
			repl, ok := cyrillic[lower]
			if !ok {
				b.WriteRune(r)
				continue
			}
			if lower != r && repl != "" {
				repl = strings.ToUpper(repl[:1]) + repl[1:]
			}
			b.WriteString(repl)
		}
		return latin(b.String())
	}
}
