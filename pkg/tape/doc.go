/*
Package tape implements the unbounded bidirectional memory of a Turing
machine: a two-sided sequence of string symbols addressed like an integer
number line, with a movable read/write head.

A Tape acts as if it were infinite. Cells are materialized lazily: the
constructor materializes the cells given in the input text, and each head
shift materializes at most one new blank cell when the head walks past the
edge of the visited region. Positions outside the visited region read as the
blank symbol without being materialized.

The visited region is delimited by LeftBound and RightBound. The origin
(position 0) is the cell the head starts on and stays materialized for the
lifetime of the tape, so reading and writing at the head never fail.

# Textual encoding

Tapes are constructed from a whitespace-separated list of symbols. One symbol
may be wrapped in square brackets to mark the initial head position:

	b a [a] c

If several symbols are bracketed the last one wins; if none are, the head
starts on the first symbol. The marked symbol becomes position 0. String
renders the same encoding back, bracketing whatever cell the head currently
occupies, so a rendered tape can always be fed back into New.
*/
package tape
