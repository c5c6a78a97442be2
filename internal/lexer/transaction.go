package lexer

import (
	"github.com/conduit-lang/tsjslex/internal/diag"
	"github.com/conduit-lang/tsjslex/internal/lexer/arena"
)

// transactionFrame captures everything BeginTransaction snapshots and
// RollBackTransaction restores, plus the buffering sink diagnostics
// reported during the transaction go to.
type transactionFrame struct {
	savedPos        int
	savedLastToken  Token
	savedLastTokEnd int
	identCheckpoint arena.Checkpoint
	buffer          *diag.BufferingReporter
}

// BeginTransaction opens a nested speculative-lexing transaction:
// diagnostics reported from here on are buffered rather than delivered
// to the real Sink, and RollBackTransaction can restore the lexer's
// cursor and current token to exactly this point. Grounded on
// begin_transaction in the original implementation's lex.rs, which the
// parser uses whenever it must look ahead through lexically-ambiguous
// syntax (e.g. arrow function parameters vs. a parenthesized
// expression) without committing to what it saw.
func (l *Lexer) BeginTransaction() {
	l.transactions = append(l.transactions, &transactionFrame{
		savedPos:        l.pos,
		savedLastToken:  l.lastToken,
		savedLastTokEnd: l.lastTokenEnd,
		identCheckpoint: l.identArena.PrepareRewind(),
		buffer:          diag.NewBufferingReporter(),
	})
}

// CommitTransaction closes the innermost transaction, keeping the
// lexer's current cursor/token and flushing its buffered diagnostics
// into whatever sink is active one level up (the next transaction's
// buffer, or the real Sink if this was the outermost transaction).
func (l *Lexer) CommitTransaction() {
	n := len(l.transactions)
	frame := l.transactions[n-1]
	l.transactions = l.transactions[:n-1]
	frame.buffer.MergeInto(l.activeSink())
}

// RollBackTransaction closes the innermost transaction, discarding its
// buffered diagnostics and restoring the lexer's cursor, current token,
// and identifier-arena high-water mark to what they were at the matching
// BeginTransaction.
func (l *Lexer) RollBackTransaction() {
	n := len(l.transactions)
	frame := l.transactions[n-1]
	l.transactions = l.transactions[:n-1]
	frame.buffer.Discard()

	l.pos = frame.savedPos
	l.lastToken = frame.savedLastToken
	l.lastTokenEnd = frame.savedLastTokEnd
	l.identArena.Rewind(frame.identCheckpoint)
}

// TransactionHasLexDiagnostics reports whether the innermost open
// transaction has buffered at least one diagnostic. Used by the parser
// to decide, e.g., that a speculative parse it was otherwise willing to
// accept should be rejected because the lexer had to report something.
func (l *Lexer) TransactionHasLexDiagnostics() bool {
	if len(l.transactions) == 0 {
		return false
	}
	return l.transactions[len(l.transactions)-1].buffer.HasDiagnostics()
}
