// Package lexer provides lexical analysis for the strand scripting language.
//
// The lexer is the first stage of the interpreter pipeline, responsible for
// converting raw source text into a stream of tokens that can be consumed by
// the parser.
//
// Key Features:
//
// Token Recognition:
//   - Keywords: print, fn, return, if, else, and, or (def is reserved and
//     rejected by the parser, not the lexer)
//   - Identifiers: first character alphabetic or '_', rest alphanumeric or '_'
//   - Literals: digit-run numbers (optionally with a '.'-fraction), and
//     '"'/'\''-delimited strings with escape resolution
//   - Operators: + - * / % ^ = and the comparison family == != < > <= >= === !==
//   - Compound-assignment carrier tokens: += -= *= /= %= ^=
//
// Comment Handling:
//   - ';' begins a comment that runs to the next newline. There is no
//     statement-separator token; the parser relies on sequential statement
//     dispatch, not punctuation, to tell statements apart.
//
// Position Tracking:
//   - 1-based line, 1-based column, for error reporting.
//   - Any Unicode whitespace rune is skipped, not just the ASCII subset.
//
// Error Handling:
//   - The lexer never fails: malformed input surfaces as unexpected tokens
//     during parsing, and an unterminated string simply runs to end of input.
//
// Usage Example:
//
//	lex := lexer.New(`fn double(x) [ return x * 2 ]`)
//	for {
//	    token := lex.NextToken()
//	    if token.Type == lexer.TOKEN_EOF {
//	        break
//	    }
//	    fmt.Printf("%s: %s\n", token.Type, token.Literal)
//	}
package lexer
