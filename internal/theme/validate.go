package theme

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/gorilla/css/scanner"
)

// ErrGenerationFailure wraps any failure producing a stylesheet other than an unknown persona.
var ErrGenerationFailure = errors.New("stylesheet generation failed")

var customPropertyRegex = regexp.MustCompile(`(?m)^\s*(--persona-[a-z-]+)\s*:`)

// CustomProperties returns the --persona-* declarations in css, in order.
func CustomProperties(css string) []string {
	matches := customPropertyRegex.FindAllStringSubmatch(css, -1)
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match[1])
	}
	return names
}

// ValidateStylesheet tokenizes css and checks brace balance and the
// custom-property block.
func ValidateStylesheet(css string) error {
	depth := 0
	s := scanner.New(css)
	for {
		token := s.Next()
		switch token.Type {
		case scanner.TokenEOF:
			if depth != 0 {
				return fmt.Errorf("%w: %d unclosed block(s)", ErrGenerationFailure, depth)
			}
			return validateCustomProperties(css)
		case scanner.TokenError:
			return fmt.Errorf("%w: tokenize at line %d col %d: %s", ErrGenerationFailure, token.Line, token.Column, token.Value)
		case scanner.TokenChar:
			switch token.Value {
			case "{":
				depth++
			case "}":
				depth--
				if depth < 0 {
					return fmt.Errorf("%w: unexpected '}' at line %d col %d", ErrGenerationFailure, token.Line, token.Column)
				}
			}
		}
	}
}

func validateCustomProperties(css string) error {
	names := CustomProperties(css)
	if len(names) != len(CustomPropertyNames) {
		return fmt.Errorf("%w: %d custom properties declared, want %d", ErrGenerationFailure, len(names), len(CustomPropertyNames))
	}
	for i, name := range names {
		if name != CustomPropertyNames[i] {
			return fmt.Errorf("%w: custom property %d is %s, want %s", ErrGenerationFailure, i, name, CustomPropertyNames[i])
		}
	}
	return nil
}
