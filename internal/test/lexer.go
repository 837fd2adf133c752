package test

import (
	"math/rand"
	"strings"
)

const validTokens = "class|fun|var|for|if|else|while|print|return|this|super|and|or|true|false|nil|(|)|{|}|,|.|-|+|;|/|*|!|!=|=|==|>|>=|<|<=|counter|_private|Snake_case2|123|3.14159|0|\"this is a string\"|\"\"|\"a string\nspanning lines\"|// comment\n|\n"

func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, "|")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}
