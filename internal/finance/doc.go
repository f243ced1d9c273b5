// Package finance contém o motor de valuation e projeção financeira.
//
// Todas as funções são puras: leem apenas seus argumentos e a tabela
// constante de múltiplos setoriais, não fazem I/O e podem ser chamadas
// concorrentemente sem coordenação. Entradas degeneradas nunca geram
// panic nem erro; cada função documenta o sentinela que devolve (0 ou +Inf).
package finance
