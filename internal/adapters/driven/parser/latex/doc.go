// Package latex provides a grammar-aware parser for LaTeX environments.
//
// The parser understands exactly enough of the language to build a tree of
// \begin{...}/\end{...} environments with byte-exact ranges: control
// sequences, line comments, verbatim-like environments whose bodies are
// opaque, and \verb spans. Mismatched or unclosed environments become
// ERROR nodes rather than failing the parse.
package latex
