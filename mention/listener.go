package mention

import (
	"errors"
	"unicode/utf8"
)

// Listener is the edit coordinator: it receives the host's text-change and
// selection events, keeps the mention store consistent across arbitrary
// edits, and drives the debounced show/hide-candidates callbacks.
//
// All methods must be called from the single goroutine that owns the host;
// the listener never blocks and never mutates the host outside its event
// handlers.
type Listener struct {
	cfg  Config
	host TextHost

	store    store
	cooldown debouncer

	current        Range
	hasCurrent     bool
	currentTrigger string
	filter         string
	hasFilter      bool
	lastSent       string
	hasSent        bool
	mentionEnabled bool
}

// Placement seeds one pre-existing mention at a caller-supplied range.
type Placement struct {
	Entity Entity
	Range  Range
}

// New validates cfg and returns a listener bound to host. The only fatal
// condition is a configuration contract violation: missing callbacks or
// default/mention attribute sets that disagree on keys.
func New(host TextHost, cfg Config) (*Listener, error) {
	if host == nil {
		return nil, errors.New("mention: host is required")
	}
	cfg.Triggers = normalizeTriggers(cfg.Triggers)
	cfg.CooldownInterval = normalizeCooldownInterval(cfg.CooldownInterval)
	cfg.Scheduler = normalizeScheduler(cfg.Scheduler)
	normalizeAttributes(&cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	l := &Listener{cfg: cfg, host: host}
	l.cooldown = debouncer{
		sched:    cfg.Scheduler,
		interval: cfg.CooldownInterval,
		expired:  l.cooldownFired,
	}
	return l, nil
}

// Mentions returns the committed mentions in location order.
func (l *Listener) Mentions() []Mention { return l.store.all() }

// Reset clears all mentions and session state and restores the default
// attributes over the entire buffer.
func (l *Listener) Reset() {
	length := utf8.RuneCountInString(l.host.Text())
	l.clearState()
	l.host.ApplyAttributes(l.cfg.DefaultAttributes, Range{Location: 0, Length: length})
}

// InsertExistingMentions seeds mentions at caller-supplied ranges without
// mutating buffer text, e.g. to restore a pre-populated buffer. Ranges that
// fall outside the buffer, have zero length, or overlap each other or an
// existing mention are rejected: no placement is applied and an error is
// returned.
func (l *Listener) InsertExistingMentions(placements []Placement) error {
	text := []rune(l.host.Text())
	for i, p := range placements {
		if p.Entity == nil {
			return errors.New("mention: placement entity is required")
		}
		if p.Range.Length < 1 || p.Range.Location < 0 || p.Range.End() > len(text) {
			return errors.New("mention: placement range outside buffer")
		}
		if _, taken := l.store.beingEdited(p.Range); taken {
			return errors.New("mention: placement overlaps an existing mention")
		}
		for _, other := range placements[:i] {
			if p.Range.Overlaps(other.Range) {
				return errors.New("mention: placements overlap each other")
			}
		}
	}
	for _, p := range placements {
		l.store.insert(Mention{
			Range:  p.Range,
			Text:   string(text[p.Range.Location:p.Range.End()]),
			Entity: p.Entity,
		})
		l.host.ApplyAttributes(l.cfg.MentionAttributes(p.Entity), p.Range)
	}
	return nil
}

// AddMention commits the in-progress candidate under the caret as entity.
// The raw candidate text (trigger included) is replaced with the trigger
// plus the entity's display name, plus one trailing space when configured.
// It reports false when no candidate is active or the candidate range no
// longer fits the buffer.
func (l *Listener) AddMention(entity Entity) bool {
	if entity == nil || !l.hasCurrent {
		return false
	}
	r := l.current
	bufLen := utf8.RuneCountInString(l.host.Text())
	if r.Location < 0 || r.Length < 1 || r.End() > bufLen {
		return false
	}

	display := l.currentTrigger + entity.MentionName()
	inserted := display
	if l.cfg.SpaceAfterMention {
		inserted += " "
	}

	l.host.Replace(r, inserted)
	l.store.adjust(Edit{
		Location:  r.Location,
		OldLength: r.Length,
		NewLength: utf8.RuneCountInString(inserted),
	})

	m := Mention{
		Range:  Range{Location: r.Location, Length: utf8.RuneCountInString(display)},
		Text:   display,
		Entity: entity,
	}
	l.store.insert(m)
	l.host.ApplyAttributes(l.cfg.MentionAttributes(entity), m.Range)
	if l.cfg.SpaceAfterMention {
		l.host.ApplyAttributes(l.cfg.DefaultAttributes, Range{Location: m.Range.End(), Length: 1})
	}

	caret := r.Location + utf8.RuneCountInString(inserted)
	l.host.SetSelection(Range{Location: caret})
	l.dismiss()
	return true
}

// ShouldChangeText must be called before the host applies an edit. The
// return value tells the host whether to run its own insertion path; false
// means the listener already applied (or suppressed) the edit.
func (l *Listener) ShouldChangeText(r Range, text string) bool {
	apply := l.shouldChangeText(r, text)
	if d := l.cfg.Delegate; d != nil {
		apply = d.ShouldChangeText(r, text) && apply
	}
	return apply
}

func (l *Listener) shouldChangeText(r Range, text string) bool {
	bufLen := utf8.RuneCountInString(l.host.Text())
	insLen := utf8.RuneCountInString(text)

	if bufLen-r.Length+insLen == 0 {
		l.clearState()
		return true
	}

	if text == "\n" && l.mentionEnabled {
		if l.cfg.HandleMentionOnReturn() {
			l.dismiss()
			return false
		}
	}

	edit := Edit{Location: r.Location, OldLength: r.Length, NewLength: insLen}

	if insLen > 1 {
		// Paste or programmatic bulk insert: the replacement can span
		// multiple triggers and mentions, so apply it here and re-detect
		// instead of letting the host's single-pass path run.
		for {
			m, ok := l.store.beingEdited(r)
			if !ok {
				break
			}
			l.clearMention(m)
		}
		l.applyEdit(r, text)
		l.store.adjust(edit)
		caret := l.host.Selection()
		l.host.ScrollIntoView(caret)
		l.detect(caret)
		return false
	}

	if m, ok := l.store.beingEdited(r); ok {
		// Destructive edit into a committed mention: drop the mention and
		// apply the edit atomically.
		l.clearMention(m)
		l.applyEdit(r, text)
		l.store.adjust(edit)
		return false
	}

	l.store.adjust(edit)
	return true
}

// DidChangeText must be called after the host applies an edit, whether the
// host ran its own insertion path or the listener applied it.
func (l *Listener) DidChangeText() {
	if d := l.cfg.Delegate; d != nil {
		d.DidChangeText()
	}
}

// DidChangeSelection must be called after every caret or selection change.
// It is the primary path that opens and closes mention context.
func (l *Listener) DidChangeSelection(sel Range) {
	l.detect(sel)
	if d := l.cfg.Delegate; d != nil {
		d.DidChangeSelection(sel)
	}
}

// DidBeginEditing forwards the host's begin-editing notification.
func (l *Listener) DidBeginEditing() {
	if d := l.cfg.Delegate; d != nil {
		d.DidBeginEditing()
	}
}

// DidEndEditing forwards the host's end-editing notification.
func (l *Listener) DidEndEditing() {
	if d := l.cfg.Delegate; d != nil {
		d.DidEndEditing()
	}
}

// ShouldInteractWith answers link/attachment interaction queries. Without a
// delegate the answer is true.
func (l *Listener) ShouldInteractWith(url string, r Range) bool {
	if d := l.cfg.Delegate; d != nil {
		return d.ShouldInteractWith(url, r)
	}
	return true
}

// detect re-runs trigger detection for sel and drives the debounced
// show/hide callbacks.
func (l *Listener) detect(sel Range) {
	ctx, ok := detectTrigger([]rune(l.host.Text()), sel, l.cfg.Triggers, l.cfg.SearchSpacesInMentions)
	if !ok {
		l.dismiss()
		return
	}

	l.current, l.hasCurrent = ctx.Range, true
	l.currentTrigger = ctx.Trigger
	l.filter, l.hasFilter = ctx.Filter, true
	l.mentionEnabled = true

	if l.cooldown.idle() {
		// A drained cooldown can re-detect an unchanged filter, e.g. the
		// caret re-reported at the same position; the last-sent filter
		// suppresses the duplicate.
		if l.hasSent && ctx.Filter == l.lastSent {
			return
		}
		l.send(ctx)
	}
	// While a timer is pending the new filter is only recorded; the expiry
	// handler decides whether it still needs sending.
}

// cooldownFired re-evaluates the filter at expiry time and sends it only
// when it differs from the last one sent. Identical or absent filters do
// not re-arm the timer.
func (l *Listener) cooldownFired() {
	ctx, ok := detectTrigger([]rune(l.host.Text()), l.host.Selection(), l.cfg.Triggers, l.cfg.SearchSpacesInMentions)
	if !ok {
		return
	}

	l.current, l.hasCurrent = ctx.Range, true
	l.currentTrigger = ctx.Trigger
	l.filter, l.hasFilter = ctx.Filter, true
	l.mentionEnabled = true

	if !l.hasSent || ctx.Filter != l.lastSent {
		l.send(ctx)
	}
}

// send emits ShowMentions for ctx, records the sent filter, and starts the
// next cooldown window.
func (l *Listener) send(ctx Context) {
	l.lastSent = ctx.Filter
	l.hasSent = true
	l.cfg.ShowMentions(ctx.Filter, ctx.Trigger)
	l.cooldown.arm()
}

// clearMention removes one mention and restores default styling over the
// span it owned.
func (l *Listener) clearMention(m Mention) {
	l.store.remove(m)
	l.host.ApplyAttributes(l.cfg.DefaultAttributes, m.Range)
}

// applyEdit writes the replacement into the host and parks the caret after
// the inserted text.
func (l *Listener) applyEdit(r Range, text string) {
	l.host.Replace(r, text)
	l.host.SetSelection(Range{Location: r.Location + utf8.RuneCountInString(text)})
}

// dismiss closes mention context and hides the candidate picker. The sent
// filter is forgotten so a re-entered context shows again even when the
// filter is unchanged. A pending cooldown timer is left alone; at expiry an
// absent context is a no-op.
func (l *Listener) dismiss() {
	l.current, l.hasCurrent = Range{}, false
	l.currentTrigger = ""
	l.filter, l.hasFilter = "", false
	l.lastSent, l.hasSent = "", false
	l.mentionEnabled = false
	l.cfg.HideMentions()
}

// clearState is the full session reset used when the buffer empties.
func (l *Listener) clearState() {
	l.store.reset()
	l.cooldown.cancel()
	l.dismiss()
}
