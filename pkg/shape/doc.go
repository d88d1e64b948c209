// Package shape models a closed set of plane figures: Circle, Rectangle
// and Triangle. The set is sealed, every variant is an immutable comparable
// record, and Match dispatches exhaustively over the three kinds.
package shape
