package scripting

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/l1jgo/invaders/internal/wave"
	"github.com/l1jgo/invaders/internal/world"
)

//go:embed level.lua
var defaultLevelScript string

// Engine wraps a single gopher-lua VM holding the level scripts.
// Single-goroutine access only (game loop).
type Engine struct {
	vm     *lua.LState
	log    *zap.Logger
	height float64
}

// NewEngine creates a Lua engine and loads all scripts from the given
// directory. When the directory is empty, missing, or defines no
// level_tuning, the built-in curve is loaded.
func NewEngine(scriptsDir string, height float64, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log, height: height}

	if scriptsDir != "" {
		if err := e.loadDir(scriptsDir); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load level scripts: %w", err)
		}
	}
	if vm.GetGlobal("level_tuning") == lua.LNil {
		if err := vm.DoString(defaultLevelScript); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load built-in level script: %w", err)
		}
		log.Debug("loaded built-in level script")
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// LevelTuning calls the Lua level_tuning function. Any failure falls back to
// the Go formula, and fields the script leaves out keep the formula's value.
func (e *Engine) LevelTuning(level int) world.LevelTuning {
	t := wave.FormulaTuning(level, e.height)

	fn := e.vm.GetGlobal("level_tuning")
	if fn == lua.LNil {
		e.log.Error("lua function level_tuning not found")
		return t
	}

	ctx := e.vm.NewTable()
	ctx.RawSetString("level", lua.LNumber(t.Level))
	ctx.RawSetString("height", lua.LNumber(e.height))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, ctx); err != nil {
		e.log.Error("lua level_tuning error", zap.Int("level", level), zap.Error(err))
		return t
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua level_tuning returned non-table", zap.Int("level", level))
		return t
	}

	t.Columns = lInt(rt, "columns", t.Columns)
	t.Rows = lInt(rt, "rows", t.Rows)
	t.EnemySpeed = lNum(rt, "enemy_speed", t.EnemySpeed)
	t.BulletSpeed = lNum(rt, "bullet_speed", t.BulletSpeed)
	t.FireChance = lNum(rt, "fire_chance", t.FireChance)
	t.HealthMultiplier = lNum(rt, "health_multiplier", t.HealthMultiplier)
	t.DamageMultiplier = lNum(rt, "damage_multiplier", t.DamageMultiplier)
	if v := rt.RawGetString("elite"); v != lua.LNil {
		t.Elite = lua.LVAsBool(v)
	}
	return t
}

// --- Lua helpers ---

// lNum reads a number field, keeping def when the field is absent.
func lNum(t *lua.LTable, key string, def float64) float64 {
	v, ok := t.RawGetString(key).(lua.LNumber)
	if !ok {
		return def
	}
	return float64(v)
}

func lInt(t *lua.LTable, key string, def int) int {
	return int(lNum(t, key, float64(def)))
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
