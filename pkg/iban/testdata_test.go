package iban

// referenceIBANs holds one valid example per supported country layout.
var referenceIBANs = []string{
	"AD1200012030200359100100",
	"AE070331234567890123456",
	"AL47212110090000000235698741",
	"AT611904300234573201",
	"AX7898765400020335",
	"AZ21NABZ00000000137010001944",
	"BA391290079401028494",
	"BE68539007547034",
	"BG80BNBG96611020345678",
	"BH72SCBLBHD18903608801",
	"BL391234512345123456789AB13",
	"BR9700360305000010009795493P1",
	"BY13NBRB3600900000002Z00AB00",
	"CH9300762011623852957",
	"CR05015202001026284066",
	"CV64000500000020108215144",
	"CY17002001280000001200527600",
	"CZ6508000000192000145399",
	"DE89370400440532013000",
	"DK5000400440116243",
	"DO28BAGR00000001212453611324",
	"EE382200221020145685",
	"EG380019000500000000263180002",
	"ES9121000418450200051332",
	"FI2112345600000785",
	"FO9754320388899944",
	"FR1420041010050500013M02606",
	"GB29NWBK60161331926819",
	"GE29NB0000000101904917",
	"GF121234512345123456789AB13",
	"GG65INGB23885912345678",
	"GI75NWBK000000007099453",
	"GL8964710001000206",
	"GP791234512345123456789AB13",
	"GR1601101250000000012300695",
	"GT82TRAJ01020000001210029690",
	"HR1210010051863000160",
	"HU42117730161111101800000000",
	"IE29AIBK93115212345678",
	"IL620108000000099999999",
	"IM20HBUK40127612345678",
	"IQ98NBIQ850123456789012",
	"IR200170000000000123456789",
	"IS140159260076545510730339",
	"IT60X0542811101000000123456",
	"JE51DEUT40508112345678",
	"JO94CBJO0010000000000131000302",
	"KW81CBKU0000000000001234560101",
	"KZ86125KZT5004100100",
	"LB62099900000001001901229114",
	"LC55HEMM000100010012001200023015",
	"LI21088100002324013AA",
	"LT121000011101001000",
	"LU280019400644750000",
	"LV80BANK0000435195001",
	"MC5811222000010123456789030",
	"MD24AG000225100013104168",
	"ME25505000012345678951",
	"MF551234512345123456789AB13",
	"MG5791389127383694554421212",
	"MK07250120000058984",
	"MQ221234512345123456789AB13",
	"MR1300020001010000123456753",
	"MT84MALT011000012345MTLCAST001S",
	"MU17BOMM0101101030300200000MUR",
	"NC551234512345123456789AB13",
	"NL91ABNA0417164300",
	"NO9386011117947",
	"PF281234512345123456789AB13",
	"PK36SCBL0000001123456702",
	"PL61109010140000071219812874",
	"PM071234512345123456789AB13",
	"PS92PALS000000000400123456702",
	"PT50000201231234567890154",
	"QA58DOHB00001234567890ABCDEFG",
	"RE131234512345123456789AB13",
	"RO49AAAA1B31007593840000",
	"RS35260005601001611379",
	"RU0204452560040702810412345678901",
	"SA0380000000608010167519",
	"SC18SSCB11010000000000001497USD",
	"SE4550000000058398257466",
	"SI56263300012039086",
	"SK3112000000198742637541",
	"SM86U0322509800000000270100",
	"ST68000100010051845310112",
	"SV62CENR00000000000000700025",
	"TF891234512345123456789AB13",
	"TL380080012345678910157",
	"TN5910006035183598478831",
	"TR330006100519786457841326",
	"UA573543470006762462054925026",
	"VA59001123000012345678",
	"VG96VPVG0000012345678901",
	"WF621234512345123456789AB13",
	"XK051000000000000053",
	"YT021234512345123456789AB13",
}
