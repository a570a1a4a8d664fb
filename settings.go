package ovr

// Settings reads and writes the runtime's settings store. Values are
// addressed by section and key, e.g. "steamvr" / "supersampleScale".
type Settings struct {
	rt SettingsRuntime
}

func (s *Settings) Float(section, key string) (float32, error) {
	v, code := s.rt.Float(section, key)
	if err := result(code); err != nil {
		return 0, err
	}
	return v, nil
}

func (s *Settings) SetFloat(section, key string, v float32) error {
	return result(s.rt.SetFloat(section, key, v))
}

func (s *Settings) Bool(section, key string) (bool, error) {
	v, code := s.rt.Bool(section, key)
	if err := result(code); err != nil {
		return false, err
	}
	return v, nil
}

func (s *Settings) SetBool(section, key string, v bool) error {
	return result(s.rt.SetBool(section, key, v))
}

func (s *Settings) Int32(section, key string) (int32, error) {
	v, code := s.rt.Int32(section, key)
	if err := result(code); err != nil {
		return 0, err
	}
	return v, nil
}

func (s *Settings) SetInt32(section, key string, v int32) error {
	return result(s.rt.SetInt32(section, key, v))
}
