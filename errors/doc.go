/*
Package errors implements custom error interfaces for the marketplace engine.

Error declarations should be generic and cover broad range of cases. Each
returned error instance can wrap a generic error declaration to provide more
details. Every failure carried out of a command aborts the whole command with
no partial effect, so errors are matched by their registered root rather than
by message content.
*/
package errors
