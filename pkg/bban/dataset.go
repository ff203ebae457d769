package bban

import "ibankit/pkg/country"

const (
	n = Digits
	a = UpperLetters
	c = Alphanumeric
)

func bank(length int, ct CharType) Entry { return NewEntry(BankCode, length, ct) }

func branch(length int, ct CharType) Entry { return NewEntry(BranchCode, length, ct) }

func account(length int, ct CharType) Entry { return NewEntry(AccountNumber, length, ct) }

func nationalCheck(length int, ct CharType) Entry { return NewEntry(NationalCheckDigit, length, ct) }

func accountType(length int, ct CharType) Entry { return NewEntry(AccountType, length, ct) }

func ownerAccountType(length int, ct CharType) Entry { return NewEntry(OwnerAccountType, length, ct) }

func identification(length int, ct CharType) Entry { return NewEntry(IdentificationNumber, length, ct) }

// Territories that may issue IBANs under their own country code share the
// parent country's layout; only the country code entering the checksum differs.
var (
	french        = NewStructure(bank(5, n), branch(5, n), account(11, c), nationalCheck(2, n))
	nordic        = NewStructure(bank(6, n), account(7, n), nationalCheck(1, n))
	unitedKingdom = NewStructure(bank(4, a), branch(6, n), account(8, n))
)

// defaultStructures is the built-in country dataset.
var defaultStructures = []struct {
	code      country.Code
	structure *Structure
}{
	{"AD", NewStructure(bank(4, n), branch(4, n), account(12, c))},
	{"AE", NewStructure(bank(3, n), account(16, c))},
	{"AL", NewStructure(bank(3, n), branch(4, n), nationalCheck(1, n), account(16, c))},
	{"AT", NewStructure(bank(5, n), account(11, n))},
	{"AX", nordic},
	{"AZ", NewStructure(bank(4, a), account(20, c))},
	{"BA", NewStructure(bank(3, n), branch(3, n), account(8, n), nationalCheck(2, n))},
	{"BE", NewStructure(bank(3, n), account(7, n), nationalCheck(2, n))},
	{"BG", NewStructure(bank(4, a), branch(4, n), accountType(2, n), account(8, c))},
	{"BH", NewStructure(bank(4, a), account(14, c))},
	{"BL", french},
	{"BR", NewStructure(bank(8, n), branch(5, n), account(10, n), accountType(1, a), ownerAccountType(1, c))},
	{"BY", NewStructure(bank(4, c), branch(4, n), account(16, c))},
	{"CH", NewStructure(bank(5, n), account(12, c))},
	{"CR", NewStructure(bank(4, n), account(14, n))},
	{"CV", NewStructure(bank(4, n), branch(4, n), account(13, c))},
	{"CY", NewStructure(bank(3, n), branch(5, n), account(16, c))},
	{"CZ", NewStructure(bank(4, n), account(16, n))},
	{"DE", NewStructure(bank(8, n), account(10, n))},
	{"DK", NewStructure(bank(4, n), account(10, n))},
	{"DO", NewStructure(bank(4, c), account(20, n))},
	{"EE", NewStructure(bank(2, n), branch(2, n), account(11, n), nationalCheck(1, n))},
	{"EG", NewStructure(bank(4, n), branch(4, n), account(17, n))},
	{"ES", NewStructure(bank(4, n), branch(4, n), nationalCheck(2, n), account(10, n))},
	{"FI", nordic},
	{"FO", NewStructure(bank(4, n), account(9, n), nationalCheck(1, n))},
	{"FR", french},
	{"GB", unitedKingdom},
	{"GE", NewStructure(bank(2, a), account(16, n))},
	{"GF", french},
	{"GG", unitedKingdom},
	{"GI", NewStructure(bank(4, a), account(15, c))},
	{"GL", NewStructure(bank(4, n), account(10, n))},
	{"GP", french},
	{"GR", NewStructure(bank(3, n), branch(4, n), account(16, c))},
	{"GT", NewStructure(bank(4, c), account(20, c))},
	{"HR", NewStructure(bank(7, n), account(10, n))},
	{"HU", NewStructure(bank(3, n), branch(4, n), nationalCheck(1, n), account(16, n))},
	{"IE", NewStructure(bank(4, a), branch(6, n), account(8, n))},
	{"IL", NewStructure(bank(3, n), branch(3, n), account(13, n))},
	{"IM", unitedKingdom},
	{"IQ", NewStructure(bank(4, a), branch(3, n), account(12, n))},
	{"IR", NewStructure(bank(3, n), account(19, n))},
	{"IS", NewStructure(bank(4, n), branch(2, n), account(6, n), identification(10, n))},
	{"IT", NewStructure(nationalCheck(1, a), bank(5, n), branch(5, n), account(12, c))},
	{"JE", unitedKingdom},
	{"JO", NewStructure(bank(4, a), branch(4, n), account(18, c))},
	{"KW", NewStructure(bank(4, a), account(22, c))},
	{"KZ", NewStructure(bank(3, n), account(13, c))},
	{"LB", NewStructure(bank(4, n), account(20, c))},
	{"LC", NewStructure(bank(4, a), account(24, c))},
	{"LI", NewStructure(bank(5, n), account(12, c))},
	{"LT", NewStructure(bank(5, n), account(11, n))},
	{"LU", NewStructure(bank(3, n), account(13, c))},
	{"LV", NewStructure(bank(4, a), account(13, c))},
	{"MC", NewStructure(bank(5, n), branch(5, n), account(11, c), nationalCheck(2, n))},
	{"MD", NewStructure(bank(2, c), account(18, c))},
	{"ME", NewStructure(bank(3, n), account(13, n), nationalCheck(2, n))},
	{"MF", french},
	{"MG", NewStructure(bank(5, n), branch(5, n), account(11, c), nationalCheck(2, n))},
	{"MK", NewStructure(bank(3, n), account(10, c), nationalCheck(2, n))},
	{"MQ", french},
	{"MR", NewStructure(bank(5, n), branch(5, n), account(11, n), nationalCheck(2, n))},
	{"MT", NewStructure(bank(4, a), branch(5, n), account(18, c))},
	{"MU", NewStructure(bank(6, c), branch(2, n), account(18, c))},
	{"NC", french},
	{"NL", NewStructure(bank(4, a), account(10, n))},
	{"NO", NewStructure(bank(4, n), account(6, n), nationalCheck(1, n))},
	{"PF", french},
	{"PK", NewStructure(bank(4, c), account(16, n))},
	{"PL", NewStructure(bank(3, n), branch(4, n), nationalCheck(1, n), account(16, n))},
	{"PM", french},
	{"PS", NewStructure(bank(4, a), account(21, c))},
	{"PT", NewStructure(bank(4, n), branch(4, n), account(11, n), nationalCheck(2, n))},
	{"QA", NewStructure(bank(4, a), account(21, c))},
	{"RE", french},
	{"RO", NewStructure(bank(4, a), account(16, c))},
	{"RS", NewStructure(bank(3, n), account(13, n), nationalCheck(2, n))},
	{"RU", NewStructure(bank(9, n), branch(5, n), account(15, c))},
	{"SA", NewStructure(bank(2, n), account(18, c))},
	{"SC", NewStructure(bank(4, a), branch(4, n), account(16, n), accountType(3, a))},
	{"SE", NewStructure(bank(3, n), account(17, n))},
	{"SI", NewStructure(bank(2, n), branch(3, n), account(8, n), nationalCheck(2, n))},
	{"SK", NewStructure(bank(4, n), account(16, n))},
	{"SM", NewStructure(nationalCheck(1, a), bank(5, n), branch(5, n), account(12, c))},
	{"ST", NewStructure(bank(4, n), branch(4, n), account(13, n))},
	{"SV", NewStructure(bank(4, a), account(20, n))},
	{"TF", french},
	{"TL", NewStructure(bank(3, n), account(14, n), nationalCheck(2, n))},
	{"TN", NewStructure(bank(2, n), branch(3, n), account(15, c))},
	{"TR", NewStructure(bank(5, n), nationalCheck(1, c), account(16, c))},
	{"UA", NewStructure(bank(6, n), account(19, n))},
	{"VA", NewStructure(bank(3, n), account(15, n))},
	{"VG", NewStructure(bank(4, a), account(16, n))},
	{"WF", french},
	{"XK", NewStructure(bank(2, n), branch(2, n), account(10, n), nationalCheck(2, n))},
	{"YT", french},
}

// LoadDefaults registers the built-in dataset into r. It fails on the first
// country r already knows.
func LoadDefaults(r *Registry) error {
	for _, d := range defaultStructures {
		if err := r.Register(d.code, d.structure); err != nil {
			return err
		}
	}
	return nil
}
