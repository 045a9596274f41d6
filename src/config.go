package src

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/ILkUVayne/utlis-go/v2/ulog"
	"gopkg.in/yaml.v3"
)

type configVal struct {
	Prompt      string `cfg:"prompt" yaml:"prompt"`
	HistoryFile string `cfg:"historyFile" yaml:"historyFile"`
	LogLevel    string `cfg:"logLevel" yaml:"logLevel"`
	HeapOrder   string `cfg:"heapOrder" yaml:"heapOrder"`
	Multiline   bool   `cfg:"multiline" yaml:"multiline"`
	MaxListing  int    `cfg:"maxListing" yaml:"maxListing"`
}

var config *configVal

func defaultConfig() *configVal {
	return &configVal{
		Prompt:      DEFAULT_PROMPT,
		HistoryFile: SSTL_CLI_HISTFILE_DEFAULT,
		LogLevel:    "error",
		HeapOrder:   HEAP_ORDER_MAX,
		MaxListing:  DEFAULT_MAX_LISTING,
	}
}

// SetupConf loads confName into config. A missing file at the default path
// leaves the defaults in place; any other failure is fatal.
func SetupConf(confName string) {
	f, err := os.Open(confName)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && confName == CONFIG {
			config = defaultConfig()
			return
		}
		ulog.Error(err)
	}

	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			ulog.Error(err)
		}
	}(f)

	if isYamlConf(confName) {
		config, err = parseYaml(f)
	} else {
		config, err = parse(f)
	}
	if err != nil {
		ulog.Error("load config ", confName, ": ", err)
	}
}

func isYamlConf(confName string) bool {
	ext := strings.ToLower(filepath.Ext(confName))
	return ext == ".yml" || ext == ".yaml"
}

// parseYaml decodes a yaml document over the defaults.
func parseYaml(r io.Reader) (*configVal, error) {
	conf := defaultConfig()
	if err := yaml.NewDecoder(r).Decode(conf); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if _, err := complexConfHandle(conf, "heapOrder", conf.HeapOrder); err != nil {
		return nil, err
	}
	if _, err := complexConfHandle(conf, "logLevel", conf.LogLevel); err != nil {
		return nil, err
	}
	return conf, nil
}

// strip one pair of surrounding double quotes
func unquote(val string) string {
	if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
		return val[1 : len(val)-1]
	}
	return val
}

// parse reads "key value" lines over the defaults. Blank lines and lines
// starting with '#' are skipped, keys are case-insensitive.
func parse(r io.Reader) (*configVal, error) {
	conf := defaultConfig()
	scanner := bufio.NewScanner(r)
	rawMap := make(map[string]string)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lLen := len(line) // len for line

		if lLen == 0 || line[0] == '#' {
			continue
		}
		firstIdx := strings.IndexAny(line, " \t")
		if firstIdx > 0 && firstIdx < lLen-1 {
			rawMap[strings.ToLower(line[0:firstIdx])] = unquote(strings.Trim(line[firstIdx+1:], " \t"))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	confType := reflect.TypeOf(conf)
	confValue := reflect.ValueOf(conf)

	for i := 0; i < confType.Elem().NumField(); i++ {
		field := confType.Elem().Field(i)
		fieldVal := confValue.Elem().Field(i)
		key, ok := field.Tag.Lookup("cfg")

		if !ok {
			key = field.Name
		}
		value, ok := rawMap[strings.ToLower(key)]
		if !ok {
			continue
		}
		if isComplex, err := complexConfHandle(conf, key, value); isComplex {
			if err != nil {
				return nil, err
			}
			continue
		}

		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(value)
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(value, 10, 64)
			if err == nil {
				fieldVal.SetInt(intVal)
			}
		case reflect.Bool:
			boolVal := "yes" == value
			fieldVal.SetBool(boolVal)
		case reflect.Slice:
			if field.Type.Elem().Kind() == reflect.String {
				fieldVal.Set(reflect.ValueOf(strings.Split(value, ",")))
			}
		}
	}
	return conf, nil
}
