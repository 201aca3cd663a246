package base

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/MobRulesGames/tilechunk/logging"
)

// Many things have the following format
//   type Foo struct {
//     Defname string
//     *FooDef
//     FooInst
//   }
// Such that a Foo is something for which there can be multiple instances
// (such as a chunk stamped over several places in a map), FooDef is the data
// that is constant between all such instances, and FooInst is the data that
// makes each instance unique.
//
// With things in this format it is convenient to have a registry structured
// like this:
//   foo_registry map[string]*FooDef
// so that a Foo can be made from a FooDef just by supplying the name of the
// FooDef.
//
// An object field tagged `registry:"autoload"` that has a niladic Load()
// method gets that method called once the rest of its data has loaded.

var registries map[string]reflect.Value

func init() {
	registries = make(map[string]reflect.Value)
}

func RemoveRegistry(name string) {
	delete(registries, name)
}

// Registers a registry which must be a map from string to
// pointer-to-struct-with-a-Name-field.
func RegisterRegistry(name string, registry interface{}) {
	mr := reflect.ValueOf(registry)
	switch {
	case strings.Contains(name, " "):
		panic(fmt.Errorf("registry name %q cannot contain spaces", name))
	case mr.Kind() != reflect.Map:
		panic(fmt.Errorf("registries must be map[string]*struct, got %v", mr.Kind()))
	case mr.Type().Key().Kind() != reflect.String:
		panic(fmt.Errorf("registries must be keyed by string, got %v", mr.Type().Key()))
	case mr.Type().Elem().Kind() != reflect.Pointer:
		panic(fmt.Errorf("registries must hold pointer values, got %v", mr.Type().Elem()))
	}
	if field, ok := mr.Type().Elem().Elem().FieldByName("Name"); !ok || field.Type.Kind() != reflect.String {
		panic(fmt.Errorf("registry values must have a Name field of type string"))
	}
	if _, ok := registries[name]; ok {
		panic(fmt.Errorf("cannot register two registries named %q", name))
	}
	registries[name] = mr
}

func mustLookupRegistry(name string) reflect.Value {
	reg, ok := registries[name]
	if !ok {
		panic(fmt.Errorf("unknown registry %q", name))
	}
	return reg
}

// Registers object in the named registry, which must have already been
// registered through RegisterRegistry(). object must be a pointer of the type
// appropriate for the named registry.
func RegisterObject(registryName string, object interface{}) {
	reg := mustLookupRegistry(registryName)

	objVal := reflect.ValueOf(object)
	if objVal.Kind() != reflect.Pointer {
		panic(fmt.Errorf("can only register objects as pointers, got %v", objVal.Kind()))
	}
	if objVal.Elem().Type() != reg.Type().Elem().Elem() {
		panic(fmt.Errorf("registry %q holds %v, cannot take %v", registryName, reg.Type().Elem().Elem(), objVal.Elem().Type()))
	}

	// We know registries only store values with a string field called Name, so
	// no need to re-check validity here.
	objectName := objVal.Elem().FieldByName("Name").String()
	if reg.MapIndex(reflect.ValueOf(objectName)).IsValid() {
		panic(fmt.Errorf("registry %q already has an entry named %q", registryName, objectName))
	}
	reg.SetMapIndex(reflect.ValueOf(objectName), objVal)
}

// Loads an object using the specified registry. object should have a field
// called Defname of type string; its value picks the def in the registry.
// The object should also embed a pointer of the registry's value type, which
// the registered def will be assigned to.
func GetObject(registryName string, object interface{}) {
	reg := mustLookupRegistry(registryName)

	objectVal := reflect.ValueOf(object)
	if objectVal.Kind() != reflect.Pointer {
		panic(fmt.Errorf("tried to load into a non-pointer: %v", objectVal.Kind()))
	}

	objectName := objectVal.Elem().FieldByName("Defname")
	if !objectName.IsValid() || objectName.Kind() != reflect.String {
		panic(fmt.Errorf("%v is missing a Defname field", objectVal.Elem().Type()))
	}

	curVal := reg.MapIndex(objectName)
	if !curVal.IsValid() {
		panic(fmt.Errorf("registry %q has no def named %q", registryName, objectName.String()))
	}
	fieldName := curVal.Elem().Type().Name()
	field := objectVal.Elem().FieldByName(fieldName)
	if !field.IsValid() {
		panic(fmt.Errorf("%v needs an embedded %v field", objectVal.Elem().Type(), curVal.Type()))
	}
	if !field.CanSet() {
		panic(fmt.Errorf("can't set value through field named %q", fieldName))
	}
	field.Set(curVal)
}

// Returns a sorted list of all names in the specified registry.
func GetAllNamesInRegistry(registryName string) []string {
	reg := mustLookupRegistry(registryName)

	var names []string
	for _, key := range reg.MapKeys() {
		names = append(names, key.String())
	}
	sort.Strings(names)
	return names
}

// Processes an object as it is normally processed when registered through
// RegisterAllObjectsInDir(). Does NOT register the object in any registry.
func LoadAndProcessObject(path, format string, target interface{}) error {
	logging.Debug("LoadAndProcessObject", "path", path)
	var err error
	switch format {
	case "json":
		err = LoadJson(path, target)

	case "gob":
		err = LoadGob(path, target)

	default:
		panic(fmt.Errorf("unknown format, %q", format))
	}
	if err != nil {
		return err
	}

	processObject(reflect.ValueOf(target), "")
	return nil
}

// Recursively descends through a value's type hierarchy and applies
// processing according to any `registry:...` tags set on its fields.
func processObject(val reflect.Value, tag string) {
	switch val.Type().Kind() {
	case reflect.Pointer:
		if val.IsNil() {
			break
		}
		processObject(val.Elem(), tag)
	case reflect.Struct:
		for i := 0; i < val.NumField(); i++ {
			processObject(val.Field(i), val.Type().Field(i).Tag.Get("registry"))
		}

	case reflect.Array, reflect.Slice:
		for i := 0; i < val.Len(); i++ {
			processObject(val.Index(i), tag)
		}
	}

	// Anything that is tagged with autoload has its Load() method called if it
	// exists and has zero inputs and outputs.
	if tag == "autoload" {
		load := val.MethodByName("Load")
		if !load.IsValid() && val.CanAddr() {
			load = val.Addr().MethodByName("Load")
		}
		if load.IsValid() && load.Type().NumIn() == 0 && load.Type().NumOut() == 0 {
			load.Call(nil)
		}
	}
}

// Walks recursively through the specified directory, loads all files with the
// specified suffix and registers them into the specified registry using
// RegisterObject(). format should either be "json" or "gob". Files beginning
// with '.' are ignored in this process.
func RegisterAllObjectsInDir(registryName, dir, suffix, format string) {
	logging.Info("Registering directory", "dir", dir)
	reg := mustLookupRegistry(registryName)
	filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			panic(fmt.Errorf("error walking directory: %w", err))
		}
		_, filename := filepath.Split(path)
		if strings.HasPrefix(filename, ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.IsDir() && strings.HasSuffix(info.Name(), suffix) {
			target := reflect.New(reg.Type().Elem().Elem())
			err = LoadAndProcessObject(path, format, target.Interface())
			if err == nil {
				RegisterObject(registryName, target.Interface())
			} else {
				logging.Error("Error loading file", "path", path, "err", err)
			}
		}
		return nil
	})
	logging.Info("Completed directory", "dir", dir)
}
