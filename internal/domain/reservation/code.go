package reservation

import (
	"crypto/rand"
	"math/big"
	"regexp"
)

const (
	CodePrefix   = "RES-"
	codeLength   = 8
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var codeRegex = regexp.MustCompile(`^RES-[A-Z0-9]{8}$`)

// Code is the customer-facing reservation reference.
type Code string

func (c Code) String() string {
	return string(c)
}

func (c Code) IsValid() bool {
	return codeRegex.MatchString(string(c))
}

func ParseCode(s string) (Code, error) {
	c := Code(s)
	if !c.IsValid() {
		return "", ErrInvalidCodeFormat
	}
	return c, nil
}

type CodeGenerator interface {
	Generate() (Code, error)
}

type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{}
}

func (g *RandomCodeGenerator) Generate() (Code, error) {
	buf := make([]byte, codeLength)
	limit := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return Code(CodePrefix + string(buf)), nil
}
