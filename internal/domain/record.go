// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// RawRecord é um registro bruto retornado pela API da Vendora.
// A API não garante um esquema fixo: campos podem estar ausentes,
// renomeados ou aninhados sob chaves alternativas entre versões.
type RawRecord map[string]any
