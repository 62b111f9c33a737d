// Package naming builds the two kinds of names a run produces: the
// zero-padded sequential filename for each planned entry, and the
// timestamped output directory that receives the copies.
//
//	Files:     <start+i padded to digit width><ext>    e.g. 001.jpg
//	Directory: <root>/<YYYYMMDD_HHMMSS>                 e.g. 20240527_092549
package naming
