/*
Package scipatch builds Sierra SCI0 IMF/FB-01 patch resources from extracted
FB-01 voice data.

The patch resource is a fixed layout, always 6148 bytes:

	$000  89 00   resource type identifier
	$002  3072    bank A voice data, 48 voices x 64 bytes
	$C02  AB CD   bank separator
	$C04  3072    bank B voice data, 48 voices x 64 bytes

Voice data arrives nibblized from the sysex dump: each data byte occupies the
low nibbles of two consecutive bytes, low nibble first. Transcoding merges
every pair back into one byte, halving 128-byte voice records to the 64-byte
form the SCI sound driver consumes. The first seven bytes of each merged
voice record hold the voice's ASCII name.
*/
package scipatch
