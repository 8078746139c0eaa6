package assembler

import (
	"errors"
	"strings"

	"github.com/ezrec/asm8/isa"
	"github.com/ezrec/asm8/translate"
)

var f = translate.From

var (
	// Lexical errors
	ErrUnterminatedAddress = errors.New(f("unterminated address"))
	ErrUnterminatedString  = errors.New(f("unterminated string"))
	ErrSingleQuote         = errors.New(f("single quote"))

	// Syntax errors
	ErrStatement    = errors.New(f("statement invalid"))
	ErrMissingComma = errors.New(f("comma missing"))
	ErrMissingEnd   = errors.New(f("end missing"))

	// Label errors
	ErrInvalidLabel   = errors.New(f("label invalid"))
	ErrDuplicateLabel = errors.New(f("label duplicated"))
	ErrLabelNotExist  = errors.New(f("label missing"))

	// Value range errors
	ErrInvalidNumber = errors.New(f("number invalid"))
	ErrInvalidString = errors.New(f("string invalid"))
	ErrJumpDistance  = errors.New(f("jump distance"))
	ErrEndOfMemory   = errors.New(f("end of memory"))

	// Operand shape errors
	ErrOperandType = errors.New(f("operand type"))
	ErrAddress     = errors.New(f("address invalid"))
)

// errName is the kind name reported in a Record.
var errName = map[error]string{
	ErrUnterminatedAddress: "UnterminatedAddressError",
	ErrUnterminatedString:  "UnterminatedStringError",
	ErrSingleQuote:         "SingleQuoteError",
	ErrStatement:           "StatementError",
	ErrMissingComma:        "MissingCommaError",
	ErrMissingEnd:          "MissingEndError",
	ErrInvalidLabel:        "InvalidLabelError",
	ErrDuplicateLabel:      "DuplicateLabelError",
	ErrLabelNotExist:       "LabelNotExistError",
	ErrInvalidNumber:       "InvalidNumberError",
	ErrInvalidString:       "InvalidStringError",
	ErrJumpDistance:        "JumpDistanceError",
	ErrEndOfMemory:         "AssembleEndOfMemoryError",
	ErrOperandType:         "OperandTypeError",
	ErrAddress:             "AddressError",
}

// Error is an assembly error: a kind, a message, and where it happened.
type Error struct {
	Err     error       // Kind of the error, one of the Err* sentinels.
	Message string      // Human readable description.
	Range   SourceRange // Location in the source text.
}

func (err *Error) Error() string {
	return f("%v: %v", err.Range, err.Message)
}

func (err *Error) Unwrap() error {
	return err.Err
}

// Name returns the kind name of the error.
func (err *Error) Name() string {
	name, ok := errName[err.Err]
	if !ok {
		return "AssemblerError"
	}
	return name
}

// Record is the plain form of an Error, suitable for serialization.
type Record struct {
	Name    string      `json:"name"`
	Message string      `json:"message"`
	Range   SourceRange `json:"range"`
}

// Record converts the error to its plain form.
func (err *Error) Record() Record {
	return Record{
		Name:    err.Name(),
		Message: err.Message,
		Range:   err.Range,
	}
}

func newError(kind error, rng SourceRange, format string, args ...any) *Error {
	return &Error{
		Err:     kind,
		Message: f(format, args...),
		Range:   rng,
	}
}

func errInvalidLabel(token Token) *Error {
	return newError(ErrInvalidLabel, token.Range,
		"Label should contain only letter or underscore, got '%v'.", token.Raw)
}

func errStatement(token Token, hasLabel bool) *Error {
	if hasLabel {
		return newError(ErrStatement, token.Range,
			"Expected instruction, got '%v'.", token.Raw)
	}
	return newError(ErrStatement, token.Range,
		"Expected label or instruction, got '%v'.", token.Raw)
}

func errMissingEnd(rng SourceRange, terminator isa.Mnemonic) *Error {
	return newError(ErrMissingEnd, rng,
		"Expected %v at the end of the source code.", string(terminator))
}

func errInvalidNumber(token Token) *Error {
	return newError(ErrInvalidNumber, token.Range,
		"Number should be hexadecimal and less than or equal to FF, got '%v'.", token.Raw)
}

// errInvalidString points at the offending character; index counts the
// characters inside the quotes.
func errInvalidString(token Token, index int, char rune) *Error {
	return newError(ErrInvalidString, token.Range.at(index+1),
		"Code point of character '%c' should be less than or equal to FF, got %X.", char, int(char))
}

func errAddress(token Token) *Error {
	return newError(ErrAddress, token.Range,
		"Expected a number or register, got '%v'.", token.Raw)
}

func errUnterminatedAddress(token Token) *Error {
	return newError(ErrUnterminatedAddress, token.Range,
		"Unterminated address '%v'.", token.Raw)
}

func errUnterminatedString(token Token) *Error {
	return newError(ErrUnterminatedString, token.Range,
		"Unterminated string '%v'.", token.Raw)
}

func errSingleQuote(token Token) *Error {
	return newError(ErrSingleQuote, token.Range.at(0),
		"Single quote is not allowed.")
}

func errOperandType(token Token, expected []isa.OperandKind) *Error {
	names := make([]string, len(expected))
	for n, kind := range expected {
		names[n] = kind.String()
	}
	return newError(ErrOperandType, token.Range,
		"Expected %v, got '%v'.", strings.Join(names, f(" or ")), token.Raw)
}

func errMissingComma(token Token) *Error {
	return newError(ErrMissingComma, token.Range,
		"Expected comma, got '%v'.", token.Raw)
}

func errDuplicateLabel(label *Label) *Error {
	return newError(ErrDuplicateLabel, label.Range,
		"Duplicate label '%v'.", label.Identifier)
}

func errEndOfMemory(stmt *Statement) *Error {
	return newError(ErrEndOfMemory, stmt.Range,
		"Can not generate code beyond the end of RAM.")
}

func errLabelNotExist(op *Operand) *Error {
	return newError(ErrLabelNotExist, op.Range,
		"Label '%v' does not exist.", op.Raw)
}

func errJumpDistance(op *Operand, distance int) *Error {
	return newError(ErrJumpDistance, op.Range,
		"Jump distance should be between -128 and 127, got %d.", distance)
}
