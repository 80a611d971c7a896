package semantic

// Builtin I/O procedure names. They accept any number of primitive-typed
// arguments, so they carry no Signature; call checking special-cases them.
var builtinNames = []string{"write", "writeln", "read", "readln"}

// IsReadBuiltin reports whether the named builtin consumes input, which
// requires its arguments to be l-values.
func IsReadBuiltin(name string) bool {
	return name == "read" || name == "readln"
}

func defineBuiltins(scope *SymbolTable) {
	for _, name := range builtinNames {
		scope.Define(&Symbol{Name: name, Kind: KindBuiltin})
	}
}
