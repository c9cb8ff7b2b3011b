// Package calc provides the named operations evaluated by the errc command
// and the parser for operands written as "1.23±0.038".
//
// Package: calc
// Title: Operation Registry and Operand Parser
// Description: Registry of arithmetic and errmath operations with aliases and
//              unique-prefix abbreviations, plus parsing of uncertain operands
//              from command-line text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-01
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-01 v0.1.0: Initial implementation
package calc
