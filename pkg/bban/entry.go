// Package bban describes the country-specific layout of the account segment
// (BBAN) of an IBAN: which fields it has, in what order, how long each is and
// which characters each may contain.
package bban

import (
	"strconv"
	"strings"
)

// EntryType is the role one field plays inside a BBAN.
type EntryType int

const (
	BankCode EntryType = iota + 1
	BranchCode
	AccountNumber
	NationalCheckDigit
	AccountType
	OwnerAccountType
	IdentificationNumber
)

// EntryTypes lists every role in declaration order.
var EntryTypes = []EntryType{
	BankCode,
	BranchCode,
	AccountNumber,
	NationalCheckDigit,
	AccountType,
	OwnerAccountType,
	IdentificationNumber,
}

var entryTypeNames = map[EntryType]string{
	BankCode:             "bank_code",
	BranchCode:           "branch_code",
	AccountNumber:        "account_number",
	NationalCheckDigit:   "national_check_digit",
	AccountType:          "account_type",
	OwnerAccountType:     "owner_account_type",
	IdentificationNumber: "identification_number",
}

// String returns the snake_case role name used in messages and JSON.
func (t EntryType) String() string {
	if name, ok := entryTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseEntryType is the inverse of EntryType.String.
func ParseEntryType(s string) (EntryType, bool) {
	for _, t := range EntryTypes {
		if entryTypeNames[t] == s {
			return t, true
		}
	}
	return 0, false
}

// CharType is the character class a field must satisfy, using the ISO 13616
// notation letters.
type CharType byte

const (
	// Digits allows 0-9 only ("n").
	Digits CharType = 'n'
	// UpperLetters allows A-Z only ("a").
	UpperLetters CharType = 'a'
	// Alphanumeric allows letters of either case and digits ("c").
	Alphanumeric CharType = 'c'
)

func (c CharType) String() string { return string(rune(c)) }

const (
	digitChars  = "0123456789"
	letterChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// alphabet is the set random synthesis draws from. Alphanumeric synthesis
// only produces upper-case letters so generated values stay canonical.
func (c CharType) alphabet() string {
	switch c {
	case Digits:
		return digitChars
	case UpperLetters:
		return letterChars
	case Alphanumeric:
		return digitChars + letterChars
	default:
		return ""
	}
}

func (c CharType) allows(ch rune) bool {
	switch c {
	case Digits:
		return ch >= '0' && ch <= '9'
	case UpperLetters:
		return ch >= 'A' && ch <= 'Z'
	case Alphanumeric:
		return (ch >= '0' && ch <= '9') || (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
	default:
		return false
	}
}

// Entry is one fixed-length field of a BBAN. The zero value is not usable;
// build entries with NewEntry.
type Entry struct {
	entryType EntryType
	charType  CharType
	length    int
}

// NewEntry returns an entry of the given role, length and character class.
// It panics on a non-positive length or an unknown character class, since
// entries are only ever built from static layout tables.
func NewEntry(t EntryType, length int, c CharType) Entry {
	if length <= 0 {
		panic("bban: entry length must be positive")
	}
	if c.alphabet() == "" {
		panic("bban: unknown character type " + c.String())
	}
	return Entry{entryType: t, charType: c, length: length}
}

func (e Entry) Type() EntryType    { return e.entryType }
func (e Entry) CharType() CharType { return e.charType }
func (e Entry) Length() int        { return e.length }

// Check returns the first character of value outside the entry's class.
// ok is true when every character is allowed.
func (e Entry) Check(value string) (bad rune, ok bool) {
	for _, ch := range value {
		if !e.charType.allows(ch) {
			return ch, false
		}
	}
	return 0, true
}

// Random draws Length characters uniformly from the entry's alphabet.
func (e Entry) Random(src RandomSource) string {
	alphabet := e.charType.alphabet()
	var b strings.Builder
	b.Grow(e.length)
	for i := 0; i < e.length; i++ {
		b.WriteByte(alphabet[src.IntN(len(alphabet))])
	}
	return b.String()
}

// String renders the entry in registry notation, e.g. "bank_code:4!n".
func (e Entry) String() string {
	return e.entryType.String() + ":" + strconv.Itoa(e.length) + "!" + e.charType.String()
}
