// Package convert orchestrates the FB-01 bank dump to SCI patch pipeline:
// validate both dumps, extract their voice data, transcode it, and emit the
// patch resource. All stages run sequentially on fully buffered data; no
// output is written unless both inputs validate.
package convert
