package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrFormatoDesconhecido = errors.New("formato de dump desconhecido")
	ErrDumpVazio           = errors.New("dump sem linhas aproveitáveis")
)
