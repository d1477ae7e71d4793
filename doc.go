/* Command goslices demonstrates sub-views over sequences.

A view is a reference to a contiguous span of a sequence: it does not store
any data itself, it only borrows from the sequence it was taken from. Views
are how a part of a collection is handed to a function, or iterated, without
copying it.

The built-in demonstrations take views of a rune array, an integer vector,
and a text buffer; show the range shortcuts (..3 for 0..3, 4.. for 4..len,
and .. for everything); then build a "first word" helper twice. The first
version returns only the offset where the first word ends, an index that
silently goes stale if the text changes. The second returns a view of the
word itself, which fails loudly once its text is cleared.

Text positions are byte offsets. A range that would cut through a multi-byte
character is out of bounds, as is any range with start > end or end > length;
ranges are never clamped.

Usage:

	goslices [-only name,...] [-demos demos.yaml] [-trace]
	goslices -words [-sep <SP>] [file ...]

The -demos file adds demonstrations of the form:

	demos:
	  - name: tail
	    text: "Francesco"
	    ranges: ["4..", "..3"]
	    first_word: true

With -words, every input line is printed with its location and its first
word, as found by the same view-returning helper.
*/
package main
