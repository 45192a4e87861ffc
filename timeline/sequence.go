package timeline

import (
	"log/slog"
	"math"
)

// Direction is the direction a Sequence plays in.
type Direction int

const (
	Normal           Direction = iota // Plays from the start to the end, every iteration
	Reverse                           // Plays from the end to the start, every iteration
	Alternate                         // Plays forwards, then backwards, then forwards...
	AlternateReverse                  // Plays backwards, then forwards, then backwards...
)

func (dir Direction) String() string {
	switch dir {
	case Normal:
		return "normal"
	case Reverse:
		return "reverse"
	case Alternate:
		return "alternate"
	case AlternateReverse:
		return "alternateReverse"
	}
	return "unknown"
}

func (dir Direction) startsForward() bool {
	return dir == Normal || dir == Alternate
}

// PlayOptions controls how Sequence.Play plays a Sequence.
type PlayOptions struct {
	// IterationCount is how many times the sequence plays through; use math.Inf(1) to play endlessly. 0 is treated as 1.
	IterationCount float64
	Direction      Direction
	// Rate is the playback speed multiplier; 0 is treated as 1. Negative rates are treated as positive.
	Rate float64
}

func (opt PlayOptions) normalized() PlayOptions {
	if opt.IterationCount <= 0 || math.IsNaN(opt.IterationCount) {
		opt.IterationCount = 1
	}
	if opt.Rate == 0 || math.IsNaN(opt.Rate) {
		opt.Rate = 1
	}
	opt.Rate = math.Abs(opt.Rate)
	return opt
}

// Playback is one run of Sequence.Play. It finishes when all of its iterations have played (completed) or when it's
// interrupted by another Play or a Pause (not completed).
type Playback struct {
	options    PlayOptions
	forward    bool
	iterations float64
	done       chan struct{}
	finished   bool
	completed  bool
}

// Done returns a channel that's closed once the Playback finishes, whether it completed or was interrupted.
func (pb *Playback) Done() <-chan struct{} {
	return pb.done
}

// Finished returns if the Playback is over.
func (pb *Playback) Finished() bool {
	return pb.finished
}

// Completed returns if the Playback played all of its iterations. An interrupted Playback never completes.
func (pb *Playback) Completed() bool {
	return pb.completed
}

// Options returns the options the Playback was started with, after defaults were applied.
func (pb *Playback) Options() PlayOptions {
	return pb.options
}

func (pb *Playback) finish(completed bool) {
	if pb.finished {
		return
	}
	pb.finished = true
	pb.completed = completed
	close(pb.done)
}

// Sequence is a Sheet's timeline: a playhead moving across a fixed length of time, driving the values of the Sheet's Objects.
type Sequence struct {
	sheet    *Sheet
	length   float64
	position float64
	playback *Playback
}

// Length returns the length of the Sequence in seconds.
func (seq *Sequence) Length() float64 {
	return seq.length
}

// Position returns the position of the playhead in seconds.
func (seq *Sequence) Position() float64 {
	return seq.position
}

// SetPosition moves the playhead to the position given (clamped to the Sequence), updating the Sheet's Objects.
func (seq *Sequence) SetPosition(position float64) {
	seq.position = math.Max(0, math.Min(seq.length, position))
	seq.sheet.evaluate()
}

// Playing returns if the Sequence has an unfinished Playback.
func (seq *Sequence) Playing() bool {
	return seq.playback != nil && !seq.playback.finished
}

// Play starts playing the Sequence with the options given, interrupting any Playback already running. Forward plays start
// from the current position unless the playhead is at the end, in which case they restart from the beginning; backward plays
// likewise start from the current position unless the playhead is at the beginning.
// The returned Playback reports when the play is over; Play itself never blocks.
func (seq *Sequence) Play(options PlayOptions) *Playback {

	options = options.normalized()

	if seq.playback != nil {
		seq.playback.finish(false)
	}

	pb := &Playback{
		options: options,
		forward: options.Direction.startsForward(),
		done:    make(chan struct{}),
	}

	seq.playback = pb

	if pb.forward && seq.position >= seq.length {
		seq.position = 0
	} else if !pb.forward && seq.position <= 0 {
		seq.position = seq.length
	}

	Logger().Debug("sequence play",
		slog.String("sheet", seq.sheet.name),
		slog.String("direction", options.Direction.String()),
		slog.Float64("iterations", options.IterationCount),
		slog.Float64("rate", options.Rate),
		slog.Float64("from", seq.position),
	)

	if seq.length == 0 {
		pb.finish(true)
	}

	seq.sheet.evaluate()

	return pb

}

// Pause stops the running Playback, if any, leaving the playhead where it is.
func (seq *Sequence) Pause() {
	if seq.playback != nil {
		seq.playback.finish(false)
		seq.playback = nil
	}
}

// update advances the playhead by dt seconds. It returns true if the playhead moved.
func (seq *Sequence) update(dt float64) bool {

	pb := seq.playback

	if pb == nil || pb.finished {
		return false
	}

	// An empty Sequence has nothing left to play.
	if seq.length <= 0 {
		seq.position = 0
		pb.finish(true)
		return true
	}

	start := seq.position
	remaining := dt * pb.options.Rate

	for remaining > 0 && !pb.finished {

		if pb.forward {

			step := math.Min(remaining, seq.length-seq.position)
			seq.position += step
			remaining -= step

			if seq.position >= seq.length {
				seq.endIteration(pb)
			}

		} else {

			step := math.Min(remaining, seq.position)
			seq.position -= step
			remaining -= step

			if seq.position <= 0 {
				seq.endIteration(pb)
			}

		}

	}

	return seq.position != start || pb.finished

}

// endIteration is called whenever the playhead reaches an end of the Sequence during a Playback.
func (seq *Sequence) endIteration(pb *Playback) {

	pb.iterations++

	if pb.iterations >= pb.options.IterationCount {
		pb.finish(true)
		Logger().Debug("sequence complete", slog.String("sheet", seq.sheet.name))
		return
	}

	switch pb.options.Direction {
	case Alternate, AlternateReverse:
		pb.forward = !pb.forward
	case Normal:
		seq.position = 0
	case Reverse:
		seq.position = seq.length
	}

}
