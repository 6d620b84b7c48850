package vm

type Opcode uint32

const (
	// PRE-STACK ... TOS+1 TOS | OP |  POST-STACK |
	ADD Opcode = iota // A B | C = A + B | C
	SUBTRACT // A B | C = A - B | C
	MULTIPLY // A B | C = A * B | C
	DIVIDE   // A B | C = A / B | C
	ASSIGN   // NAME A | NAME = A |
)

var opcodeSymbols = map[string]Opcode{
	"+": ADD,
	"-": SUBTRACT,
	"*": MULTIPLY,
	"/": DIVIDE,
	"=": ASSIGN,
}

// ParseOpcode matches a token against the operator symbols. Only exact
// matches count; "++" or "+1" are not operators.
func ParseOpcode(token string) (Opcode, bool) {
	op, ok := opcodeSymbols[token]
	return op, ok
}

func (o Opcode) String() string {
	switch o {
	case ADD:
		return "ADD"
	case SUBTRACT:
		return "SUBTRACT"
	case MULTIPLY:
		return "MULTIPLY"
	case DIVIDE:
		return "DIVIDE"
	case ASSIGN:
		return "ASSIGN"
	}
	panic("Unnamed opcode")
}

// Symbol returns the operator as it is written in an expression.
func (o Opcode) Symbol() string {
	for s, op := range opcodeSymbols {
		if op == o {
			return s
		}
	}
	return ""
}

// IsArithmetic is true for the four binary operators that push a result.
func (o Opcode) IsArithmetic() bool {
	switch o {
	case ADD, SUBTRACT, MULTIPLY, DIVIDE:
		return true
	}
	return false
}
