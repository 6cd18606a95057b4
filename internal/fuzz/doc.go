// Package fuzztests holds Go fuzz harnesses for the front end
// (source -> lexer -> parser). They look for panics, hangs and broken
// invariants on arbitrary input.
//
// Назначение: прогонять байты через FileSet, лексер и парсер и проверять
// покрытие токенов и спаны AST.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
