// Package pitch converts note-relative pitch points into an absolute-tick,
// semitone-offset curve and merges such curves.
//
// Each note's authored points are placed at ticks relative to the note
// onset, re-centred on the previous note's key while they overlap it
// (portamento), filled in by their declared shape, extended to the note's
// start and end tick, overlaid with vibrato and finally resampled onto a grid
// of SamplingInterval ticks. [FromPart] sums the note curves with the part's
// own curve; [MergeFromParts] sums curves of different parts.
package pitch
