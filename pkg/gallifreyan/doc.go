// Package gallifreyan lays out English text in Sherman's circular
// Gallifreyan script.
//
// Text is tokenized into letters (CH, PH, WH, SH, TH, GH, QU and NG are
// single letters), each word is given a circle on the sentence circle, and
// each letter a slot on its word circle. Vowels that follow a consonant ride
// on that consonant's slot instead of taking their own. Every letter is a
// base shape plus an optional dot or line mark; each is placed with a
// three-level polar composition:
//
//	sentence offset + word offset - letter-local offset
//
// Crescent and quarter bases cut their word circle, so the circle is drawn
// as arcs between them. Words are separated by notches on an inner sentence
// circle, drawn the same way.
//
// The output is a list of Plot records. Package plotter turns them into
// polylines.
package gallifreyan
