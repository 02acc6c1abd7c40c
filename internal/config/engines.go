package config

import (
	"slices"

	"github.com/synthfront/qsynth/internal/engine"
)

// NewEngine adds a named engine to the engine list. The default engine is
// never listed.
func (o *Options) NewEngine(e *engine.Engine) {
	if e == nil || e.IsDefault() {
		return
	}
	name := e.Name()
	if slices.Contains(o.engines, name) {
		return
	}
	o.engines = append(o.engines, name)
	o.notifier.NotifySet("Engines", nil, o.Engines())
	o.logger.Debug("engine added", "engine", name, "id", e.ID)
}

// RenameEngine renames e to its setup's display name. It returns false,
// and changes nothing, when there is no setup, the name is unchanged, or
// another listed engine already has the new name. A named engine's
// presets move to the new name; its stored setup is dropped and the
// caller saves it again under the new name.
func (o *Options) RenameEngine(e *engine.Engine) bool {
	if e == nil || e.Setup() == nil {
		return false
	}

	oldName := e.Name()
	newName := e.Setup().DisplayName
	if oldName == newName {
		return false
	}
	if !e.IsDefault() && slices.Contains(o.engines, newName) {
		o.logger.Warn("engine name already in use", "engine", oldName, "name", newName)
		return false
	}
	e.SetName(newName)

	if !e.IsDefault() {
		if i := slices.Index(o.engines, oldName); i >= 0 {
			o.engines[i] = newName
		}
		engines := o.store.Group("/Engine")
		engines.Group(oldName + "/Preset").CopyTo(engines.Group(newName + "/Preset"))
		engines.Remove(oldName)
	}

	o.notifier.NotifyRename("Engine/"+oldName, oldName, newName)
	o.logger.Debug("engine renamed", "from", oldName, "to", newName, "id", e.ID)
	return true
}

// DeleteEngine removes a named engine from the list and deletes its
// stored setup and presets.
func (o *Options) DeleteEngine(e *engine.Engine) {
	if e == nil || e.IsDefault() {
		return
	}

	name := e.Name()
	if i := slices.Index(o.engines, name); i >= 0 {
		o.engines = slices.Delete(o.engines, i, i+1)
	}
	o.store.Group("/Engine").Remove(name)

	o.notifier.NotifyDelete("Engine/"+name, name)
	o.logger.Debug("engine deleted", "engine", name, "id", e.ID)
}
