package config

const SourceFileExt = ".splat"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".splat", ".spl"}

// ReplPrompt is printed before each REPL input line.
const ReplPrompt = ">> "

// Parser and evaluator depth limits guarding against runaway nesting.
const (
	MaxParseDepth = 500
	MaxEvalDepth  = 5000
)

// Built-in function names
const (
	PrintFuncName  = "print"
	LenFuncName    = "len"
	TypeOfFuncName = "typeOf"
	ShowFuncName   = "show"
	NextFuncName   = "next"
	RangeFuncName  = "range"
)
