// Package scene parses compact textual shape descriptions into ordered
// collections of sketch shapes and draws them onto a surface.
//
// # Syntax
//
// A description is a sequence of commands. Each command is a single letter
// followed by its points; numbers are separated by whitespace or commas:
//
//	S x,y x,y          segment from the first point to the second
//	P x,y [x,y ...]    polygon with one or more vertices
//	C x,y r            circle with center and radius
//	A x,y x,y x,y      arc from the first point to the third, through the second
//	R x,y x,y          rectangle from top-left to bottom-right
//
// Commands are case-insensitive. For example:
//
//	sc, err := scene.Parse("house", "R 10,40 90,100 P 10,40 50,10 90,40")
//	if err != nil {
//	    return err
//	}
//	rec := recording.NewRecorder(100, 100)
//	if err := sc.Draw(rec, nil); err != nil {
//	    return err
//	}
//
// Malformed input fails with an error wrapping [ErrSyntax]. Geometric
// failures, such as an arc through collinear points, fail with the error
// from the sketch constructors unless [WithSkipInvalid] is given.
package scene
