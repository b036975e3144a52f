package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/lfsilva/stackcalc/internal/apperr"
	"github.com/lfsilva/stackcalc/internal/calc"
)

func main() {
	source := strings.Join(os.Args[1:], " ")
	if strings.TrimSpace(source) == "" {
		source = promptExpression()
	}

	result, err := calc.Evaluate(source)
	if err != nil {
		fmt.Println(errorLine(err))
		os.Exit(1)
	}

	fmt.Printf("Sintaxe Válida; Resultado = %d\n", result)
}

func promptExpression() string {
	fmt.Print("Digite a expressão em RPN (StackCalc): ")
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}

// errorLine maps an evaluation error to the user-facing message for its
// class.
func errorLine(err error) string {
	switch apperr.KindOf(err) {
	case apperr.KindLexical:
		return "Erro Léxico"
	case apperr.KindSyntax:
		return "Erro de Sintaxe"
	case apperr.KindRuntime:
		return "Erro de Execução: divisão por zero"
	default:
		return "Erro: " + err.Error()
	}
}
