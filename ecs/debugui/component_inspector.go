package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/corepulse/corepulse/ecs"
)

// ComponentInspector shows the components attached to one entity and lets
// primitive fields be edited in place. Edits write through the pointer
// returned by the world, so they are visible to systems on the next update.
type ComponentInspector struct{}

func NewComponentInspector() *ComponentInspector {
	return &ComponentInspector{}
}

func (ci *ComponentInspector) Render(w *ecs.World, selected ecs.Entity) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if selected == ecs.NullEntity {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	if !w.Alive(selected) {
		imgui.Text(fmt.Sprintf("Entity %d is no longer alive", selected))
		imgui.End()
		return
	}

	sig := w.Signature(selected)
	imgui.Text(fmt.Sprintf("Entity ID: %d", selected))
	imgui.Text(fmt.Sprintf("Signature: 0x%X", uint64(sig)))
	imgui.Separator()

	for id, t := range w.ComponentTypes() {
		if !sig.Has(ecs.ComponentID(id)) {
			continue
		}
		component, ok := w.ComponentByType(selected, t)
		if !ok {
			continue
		}

		if imgui.TreeNodeStr(t.String()) {
			ci.renderComponent(component, t)
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (ci *ComponentInspector) renderComponent(component any, compType reflect.Type) {
	val := reflect.ValueOf(component)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		ci.renderField(compType.Name(), val)
		return
	}

	fields := globalReflectionCache.GetFields(compType)
	for _, field := range fields {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		ci.renderField(field.Name, fieldVal)
	}
}

func (ci *ComponentInspector) renderField(name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			nestedFields := globalReflectionCache.GetFields(val.Type())
			for _, nf := range nestedFields {
				nestedVal := val.Field(nf.Index)
				if nf.IsPointer {
					if nestedVal.IsNil() {
						imgui.Text(fmt.Sprintf("%s: nil", nf.Name))
						continue
					}
					nestedVal = nestedVal.Elem()
				}
				ci.renderField(nf.Name, nestedVal)
			}
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}
