package simdsql

// Character class flags. A byte's class is a bitwise OR of these.
const (
	classWhitespace uint8 = 0x01 // space, tab, newline, carriage return
	classUpper      uint8 = 0x02 // A-Z
	classLower      uint8 = 0x04 // a-z
	classDigit      uint8 = 0x08 // 0-9
	classUnderscore uint8 = 0x10 // _
	classQuote      uint8 = 0x20 // ' "
	classOperator   uint8 = 0x40 // ! % & * + - . / < = > ^ | ~
	classDelimiter  uint8 = 0x80 // ( ) , : ; [ ] { }

	// Composite classes
	classAlpha      = classUpper | classLower
	classIdentStart = classAlpha | classUnderscore
	classIdentCont  = classIdentStart | classDigit
)

// Lookup table for byte classification (256 entries, one cache line
// of payload per 64 bytes). Bytes >= 0x80 carry no class.
var charClassTable = [256]uint8{
	// 0x00-0x0F: control characters; tab, newline, carriage return are whitespace
	0, 0, 0, 0, 0, 0, 0, 0,
	0, classWhitespace, classWhitespace, 0, 0, classWhitespace, 0, 0,

	// 0x10-0x1F
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,

	// 0x20-0x2F (space ! " # $ % & ' ( ) * + , - . /)
	classWhitespace, classOperator, classQuote, 0,
	0, classOperator, classOperator, classQuote,
	classDelimiter, classDelimiter, classOperator, classOperator,
	classDelimiter, classOperator, classOperator, classOperator,

	// 0x30-0x3F (digits : ; < = > ?)
	classDigit, classDigit, classDigit, classDigit,
	classDigit, classDigit, classDigit, classDigit,
	classDigit, classDigit, classDelimiter, classDelimiter,
	classOperator, classOperator, classOperator, 0,

	// 0x40-0x4F (@ A-O)
	0, classUpper, classUpper, classUpper,
	classUpper, classUpper, classUpper, classUpper,
	classUpper, classUpper, classUpper, classUpper,
	classUpper, classUpper, classUpper, classUpper,

	// 0x50-0x5F (P-Z [ \ ] ^ _)
	classUpper, classUpper, classUpper, classUpper,
	classUpper, classUpper, classUpper, classUpper,
	classUpper, classUpper, classUpper, classDelimiter,
	0, classDelimiter, classOperator, classUnderscore,

	// 0x60-0x6F (` a-o)
	0, classLower, classLower, classLower,
	classLower, classLower, classLower, classLower,
	classLower, classLower, classLower, classLower,
	classLower, classLower, classLower, classLower,

	// 0x70-0x7F (p-z { | } ~ DEL)
	classLower, classLower, classLower, classLower,
	classLower, classLower, classLower, classLower,
	classLower, classLower, classLower, classDelimiter,
	classOperator, classDelimiter, classOperator, 0,

	// 0x80-0xFF: no class
}

func isIdentStart(c byte) bool { return charClassTable[c]&classIdentStart != 0 }

func isIdentCont(c byte) bool { return charClassTable[c]&classIdentCont != 0 }

func isDigit(c byte) bool { return charClassTable[c]&classDigit != 0 }

func isWhitespace(c byte) bool { return charClassTable[c]&classWhitespace != 0 }

func isOperator(c byte) bool { return charClassTable[c]&classOperator != 0 }

func isDelimiter(c byte) bool { return charClassTable[c]&classDelimiter != 0 }

func isQuote(c byte) bool { return charClassTable[c]&classQuote != 0 }
