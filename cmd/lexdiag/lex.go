package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conduit-lang/tsjslex/internal/diag"
	"github.com/conduit-lang/tsjslex/internal/lexer"
	"github.com/conduit-lang/tsjslex/internal/padded"
)

var (
	lexJSON       bool
	lexShowTokens bool
)

func init() {
	lexCmd.Flags().BoolVar(&lexJSON, "json", false, "Output tokens and diagnostics as JSON")
	lexCmd.Flags().BoolVar(&lexShowTokens, "tokens", false, "Print the token stream in addition to diagnostics")
}

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a JS/TS/JSX source file and report lexical diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		result := tokenizeFile(src)

		if lexJSON {
			return printJSON(path, result)
		}
		printTerminal(path, result)
		if len(result.Diagnostics) > 0 {
			return fmt.Errorf("%d diagnostic(s)", len(result.Diagnostics))
		}
		return nil
	},
}

type tokenRecord struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type diagnosticRecord struct {
	Code     diag.Kind    `json:"code"`
	Severity diag.Severity `json:"severity"`
	Message  string       `json:"message"`
	Line     int          `json:"line"`
	Column   int          `json:"column"`
}

type lexResult struct {
	Tokens      []tokenRecord
	Diagnostics []diagnosticRecord
}

// tokenizeFile runs the full token stream for one source file, applying
// the division-vs-regexp disambiguation a parser would: a `/` following a
// token that cannot end an expression (an operator, an opening bracket, a
// keyword expecting an operand, or the start of the file) is retried as a
// regexp literal via TestForRegexp/ReparseAsRegexp rather than accepted as
// the division operator.
func tokenizeFile(src []byte) lexResult {
	buf := padded.NewFromBytes(src)
	sink := diag.NewSliceSink()
	idx := newLineIndex(src)
	l := lexer.New(buf, sink)

	var result lexResult
	canPrecedeRegexp := true

	for {
		tok := l.Peek()
		if (tok.Type == lexer.TokenSlash || tok.Type == lexer.TokenSlashEqual) && canPrecedeRegexp && l.TestForRegexp() {
			l.ReparseAsRegexp()
			tok = l.Peek()
		}

		pos := idx.positionOf(tok.Begin)
		result.Tokens = append(result.Tokens, tokenRecord{
			Type:   tok.Type.String(),
			Text:   string(buf.Slice(tok.Begin, tok.End)),
			Line:   pos.Line,
			Column: pos.Column,
		})

		if tok.Type == lexer.TokenCompleteTemplate || tok.Type == lexer.TokenIncompleteTemplate {
			l.CommitTemplateDiagnostics(tok)
		}

		if tok.Type == lexer.TokenEndOfFile {
			break
		}
		canPrecedeRegexp = tokenCanPrecedeRegexp(tok.Type)
		l.Skip()
	}

	for _, d := range sink.Diagnostics {
		pos := idx.positionOf(d.Span.Begin)
		result.Diagnostics = append(result.Diagnostics, diagnosticRecord{
			Code: d.Code, Severity: d.Severity, Message: d.Message,
			Line: pos.Line, Column: pos.Column,
		})
	}
	return result
}

// tokenCanPrecedeRegexp reports whether a `/` immediately after this token
// type must be the start of a regexp literal rather than division: true
// for everything except tokens that can end an expression (identifiers,
// literals, closing brackets, postfix ++/--).
func tokenCanPrecedeRegexp(t lexer.TokenType) bool {
	switch t {
	case lexer.TokenIdentifier, lexer.TokenPrivateIdentifier, lexer.TokenNumber, lexer.TokenString,
		lexer.TokenCompleteTemplate, lexer.TokenRegexp,
		lexer.TokenRightParen, lexer.TokenRightSquare, lexer.TokenRightCurly,
		lexer.TokenPlusPlus, lexer.TokenMinusMinus,
		lexer.TokenKeywordThis, lexer.TokenKeywordSuper, lexer.TokenKeywordTrue, lexer.TokenKeywordFalse, lexer.TokenKeywordNull:
		return false
	default:
		return true
	}
}

func printJSON(path string, result lexResult) error {
	output := struct {
		File        string             `json:"file"`
		Tokens      []tokenRecord      `json:"tokens,omitempty"`
		Diagnostics []diagnosticRecord `json:"diagnostics"`
	}{File: path, Diagnostics: result.Diagnostics}
	if lexShowTokens {
		output.Tokens = result.Tokens
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func printTerminal(path string, result lexResult) {
	if lexShowTokens {
		dim := color.New(color.Faint)
		if noColor {
			dim.DisableColor()
		}
		for _, tok := range result.Tokens {
			fmt.Printf("%3d:%-3d %-12s %s\n", tok.Line, tok.Column, tok.Type, dim.Sprint(tok.Text))
		}
	}

	errColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow, color.Bold)
	if noColor {
		errColor.DisableColor()
		warnColor.DisableColor()
	}

	for _, d := range result.Diagnostics {
		c := errColor
		if d.Severity == diag.SeverityWarning {
			c = warnColor
		}
		c.Printf("%s:%d:%d: %s [%s]\n", path, d.Line, d.Column, d.Message, d.Code)
	}
}
