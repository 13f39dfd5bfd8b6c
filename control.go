package vt100

// Control bytes recognized by the idle state (spec.md §4.1).
const (
	ctrlBELL = 0x07
	ctrlBS   = 0x08
	ctrlHT   = 0x09
	ctrlLF   = 0x0A
	ctrlCR   = 0x0D
	ctrlESC  = 0x1B
	ctrlDEL  = 0x7F
	ctrlENQ  = 0x05
)

const (
	printableLo = 0x20
	printableHi = 0x7E
)

// deviceAttributesResponse is sent for both "ESC Z" and "ESC [ c" (DA query).
const deviceAttributesResponse = "\x1B[?1;0c"

// enquiryResponse answers ENQ (0x05).
const enquiryResponse = "X"

var hexDigits = [16]byte{
	'0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9', 'A', 'B', 'C', 'D', 'E', 'F',
}

// hexchar renders a non-printable control byte as the four-character
// debug form "0xHH", matching the original vt100.cpp hexchar() helper.
func hexchar(c byte) [4]byte {
	return [4]byte{'0', 'x', hexDigits[c>>4], hexDigits[c&0x0F]}
}
