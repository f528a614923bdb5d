package model

// MessageSink delivers a line-oriented message to a character (spec
// §6: "Observable effects on characters are line-oriented messages").
// Actual telnet/terminal I/O is an external collaborator (spec §1);
// the core only ever calls Send.
type MessageSink interface {
	Send(group MessageGroup, text string)
}

// MessageGroup is the fixed grouping spec §6 names.
type MessageGroup uint8

const (
	MessageInfo MessageGroup = iota
	MessageCombat
	MessageAction
	MessageSystem
	MessageCommandResponse
)

// CharacterSettings are the per-player toggles spec §3.1 names.
type CharacterSettings struct {
	Autoloot      bool // transfer corpse contents to the killer on NPC death
	Autosacrifice bool // destroy the corpse after autoloot runs
	CombatBusy    bool // queue commands instead of rejecting them while mid-cooldown
}

// CharacterExt is the variant extension for KindCharacter: a player
// session bound to a mob (spec §3.1). Credential storage is an
// external collaborator (spec §1 non-goals) — only the username needed
// to correlate a session to its account lives here.
type CharacterExt struct {
	username string
	sink     MessageSink
	settings CharacterSettings

	// actionQueue holds whatever state package command's action queue
	// needs (command.Queue). Stored as any to avoid model importing
	// command, which itself must import model to resolve arguments
	// against the world.
	actionQueue any
}

// NewCharacter constructs a character session for username delivering
// through sink. It does not bind the session to any mob.
func NewCharacter(username string, sink MessageSink) *Object {
	o := newObject(KindCharacter, username, nil, 0)
	o.char_ = &CharacterExt{username: username, sink: sink}
	return o
}

func (o *Object) Username() string { return o.char_.username }

func (o *Object) MessageSink() MessageSink     { return o.char_.sink }
func (o *Object) SetMessageSink(s MessageSink) { o.char_.sink = s }

// Send delivers a message through the character's sink, if attached.
func (o *Object) Send(group MessageGroup, text string) {
	if o.char_.sink != nil {
		o.char_.sink.Send(group, text)
	}
}

func (o *Object) Settings() CharacterSettings       { return o.char_.settings }
func (o *Object) SetSettings(s CharacterSettings)   { o.char_.settings = s }

// ActionQueueState returns whatever package command has stashed here,
// or nil before a queue has been attached.
func (o *Object) ActionQueueState() any { return o.char_.actionQueue }

// SetActionQueueState attaches package command's queue state.
func (o *Object) SetActionQueueState(q any) { o.char_.actionQueue = q }
