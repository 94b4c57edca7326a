package setting

import (
	"io"

	"github.com/amanogawa-dev/rekordcodec/pkg/binutil"
	"github.com/amanogawa-dev/rekordcodec/pkg/rkerr"
)

// Data is the sum type of the four setting-payload shapes. Which one a file
// holds is determined by the file's own name (DEVSETTING.DAT,
// DJMMYSETTING.DAT, MYSETTING.DAT, MYSETTING2.DAT), not by payload length
// alone: MySetting and MySetting2 are both exactly 40 bytes on the wire.
type Data interface {
	FileKind() FileKind
	WriteTo(w io.Writer) error
}

// FileKind names which of the four setting files a Data payload belongs to.
type FileKind int

const (
	FileDevSetting FileKind = iota
	FileDJMMySetting
	FileMySetting
	FileMySetting2
)

func (k FileKind) payloadLen() int {
	switch k {
	case FileDevSetting:
		return 32
	case FileDJMMySetting:
		return 52
	case FileMySetting, FileMySetting2:
		return 40
	default:
		return 0
	}
}

func readData(kind FileKind, r io.Reader) (Data, error) {
	switch kind {
	case FileDevSetting:
		return readDevSetting(r)
	case FileDJMMySetting:
		return readDJMMySetting(r)
	case FileMySetting:
		return readMySetting(r)
	case FileMySetting2:
		return readMySetting2(r)
	default:
		return nil, rkerr.Structuralf("setting.readData", -1, "unrecognized setting file kind %d", kind)
	}
}

func assertZero(op string, r io.Reader, n int) error {
	raw, err := binutil.ReadBytes(r, n)
	if err != nil {
		return rkerr.Structural(op, -1, err)
	}
	for _, b := range raw {
		if b != 0 {
			return rkerr.Structuralf(op, -1, "expected %d zero-padding bytes, got %x", n, raw)
		}
	}
	return nil
}

// DevSetting is the DEVSETTING.DAT payload. Its internal layout is not
// documented anywhere in the reference implementation (it parses this file
// as an opaque byte vector), so it is preserved verbatim rather than
// decoded into named fields.
type DevSetting struct {
	Raw [32]byte
}

func (DevSetting) FileKind() FileKind { return FileDevSetting }

func readDevSetting(r io.Reader) (Data, error) {
	raw, err := binutil.ReadBytes(r, 32)
	if err != nil {
		return nil, rkerr.Structural("setting.readDevSetting", -1, err)
	}
	var d DevSetting
	copy(d.Raw[:], raw)
	return d, nil
}

func (d DevSetting) WriteTo(w io.Writer) error {
	_, err := w.Write(d.Raw[:])
	return err
}

// DJMMySetting is the DJMMYSETTING.DAT payload: mixer preferences.
type DJMMySetting struct {
	Unknown1                    [12]byte
	ChannelFaderCurve           ChannelFaderCurve
	CrossfaderCurve             CrossfaderCurve
	HeadphonesPreEQ             HeadphonesPreEQ
	HeadphonesMonoSplit         HeadphonesMonoSplit
	BeatFXQuantize              BeatFXQuantize
	MicLowCut                   MicLowCut
	TalkOverMode                TalkOverMode
	TalkOverLevel               TalkOverLevel
	MidiChannel                 MidiChannel
	MidiButtonType              MidiButtonType
	DisplayBrightness           MixerDisplayBrightness
	IndicatorBrightness         MixerIndicatorBrightness
	ChannelFaderCurveLongFader  ChannelFaderCurveLongFader
}

func (DJMMySetting) FileKind() FileKind { return FileDJMMySetting }

func readDJMMySetting(r io.Reader) (Data, error) {
	const op = "setting.readDJMMySetting"
	var d DJMMySetting

	unknown1, err := binutil.ReadBytes(r, 12)
	if err != nil {
		return nil, rkerr.Structural(op, -1, err)
	}
	copy(d.Unknown1[:], unknown1)

	if d.ChannelFaderCurve, err = readByteEnum(op, "ChannelFaderCurve", r, ChannelFaderCurveSteepTop, ChannelFaderCurveLinear, ChannelFaderCurveSteepBottom); err != nil {
		return nil, err
	}
	if d.CrossfaderCurve, err = readByteEnum(op, "CrossfaderCurve", r, CrossfaderCurveConstantPower, CrossfaderCurveSlowCut, CrossfaderCurveFastCut); err != nil {
		return nil, err
	}
	if d.HeadphonesPreEQ, err = readByteEnum(op, "HeadphonesPreEQ", r, HeadphonesPreEQPostEQ, HeadphonesPreEQPreEQ); err != nil {
		return nil, err
	}
	if d.HeadphonesMonoSplit, err = readByteEnum(op, "HeadphonesMonoSplit", r, HeadphonesMonoSplitMonoSplit, HeadphonesMonoSplitStereo); err != nil {
		return nil, err
	}
	if d.BeatFXQuantize, err = readByteEnum(op, "BeatFXQuantize", r, BeatFXQuantizeOff, BeatFXQuantizeOn); err != nil {
		return nil, err
	}
	if d.MicLowCut, err = readByteEnum(op, "MicLowCut", r, MicLowCutOff, MicLowCutOn); err != nil {
		return nil, err
	}
	if d.TalkOverMode, err = readByteEnum(op, "TalkOverMode", r, TalkOverModeAdvanced, TalkOverModeNormal); err != nil {
		return nil, err
	}
	if d.TalkOverLevel, err = readByteEnum(op, "TalkOverLevel", r, TalkOverLevelMinus24dB, TalkOverLevelMinus18dB, TalkOverLevelMinus12dB, TalkOverLevelMinus6dB); err != nil {
		return nil, err
	}
	if d.MidiChannel, err = readByteEnum(op, "MidiChannel", r,
		MidiChannelOne, MidiChannelTwo, MidiChannelThree, MidiChannelFour, MidiChannelFive, MidiChannelSix,
		MidiChannelSeven, MidiChannelEight, MidiChannelNine, MidiChannelTen, MidiChannelEleven, MidiChannelTwelve,
		MidiChannelThirteen, MidiChannelFourteen, MidiChannelFifteen, MidiChannelSixteen); err != nil {
		return nil, err
	}
	if d.MidiButtonType, err = readByteEnum(op, "MidiButtonType", r, MidiButtonTypeToggle, MidiButtonTypeTrigger); err != nil {
		return nil, err
	}
	if d.DisplayBrightness, err = readByteEnum(op, "DisplayBrightness", r,
		MixerDisplayBrightnessWhite, MixerDisplayBrightnessOne, MixerDisplayBrightnessTwo, MixerDisplayBrightnessThree, MixerDisplayBrightnessFour, MixerDisplayBrightnessFive); err != nil {
		return nil, err
	}
	if d.IndicatorBrightness, err = readByteEnum(op, "IndicatorBrightness", r,
		MixerIndicatorBrightnessOne, MixerIndicatorBrightnessTwo, MixerIndicatorBrightnessThree); err != nil {
		return nil, err
	}
	if d.ChannelFaderCurveLongFader, err = readByteEnum(op, "ChannelFaderCurveLongFader", r,
		ChannelFaderCurveLongFaderExponential, ChannelFaderCurveLongFaderSmooth, ChannelFaderCurveLongFaderLinear); err != nil {
		return nil, err
	}
	if err := assertZero(op, r, 27); err != nil {
		return nil, err
	}
	return d, nil
}

func (d DJMMySetting) WriteTo(w io.Writer) error {
	if _, err := w.Write(d.Unknown1[:]); err != nil {
		return err
	}
	for _, v := range []uint8{
		uint8(d.ChannelFaderCurve), uint8(d.CrossfaderCurve), uint8(d.HeadphonesPreEQ), uint8(d.HeadphonesMonoSplit),
		uint8(d.BeatFXQuantize), uint8(d.MicLowCut), uint8(d.TalkOverMode), uint8(d.TalkOverLevel),
		uint8(d.MidiChannel), uint8(d.MidiButtonType), uint8(d.DisplayBrightness), uint8(d.IndicatorBrightness),
		uint8(d.ChannelFaderCurveLongFader),
	} {
		if err := binutil.WriteU8(w, v); err != nil {
			return err
		}
	}
	return binutil.PadZero(w, 27)
}

// MySetting is the MYSETTING.DAT payload: player preferences.
type MySetting struct {
	Unknown1              [8]byte
	OnAirDisplay          OnAirDisplay
	LCDBrightness         LCDBrightness
	Quantize              Quantize
	AutoCueLevel          AutoCueLevel
	Language              Language
	Unknown2              uint8
	JogRingBrightness     JogRingBrightness
	JogRingIndicator      JogRingIndicator
	SlipFlashing          SlipFlashing
	Unknown3              [3]byte
	DiscSlotIllumination  DiscSlotIllumination
	EjectLock             EjectLock
	Sync                  Sync
	PlayMode              PlayMode
	QuantizeBeatValue     QuantizeBeatValue
	HotCueAutoLoad        HotCueAutoLoad
	HotCueColor           HotCueColor
	NeedleLock            NeedleLock
	TimeMode              TimeMode
	JogMode               JogMode
	AutoCue               AutoCue
	MasterTempo           MasterTempo
	TempoRange            TempoRange
	PhaseMeter            PhaseMeter
}

func (MySetting) FileKind() FileKind { return FileMySetting }

func readMySetting(r io.Reader) (Data, error) {
	const op = "setting.readMySetting"
	var d MySetting

	unknown1, err := binutil.ReadBytes(r, 8)
	if err != nil {
		return nil, rkerr.Structural(op, -1, err)
	}
	copy(d.Unknown1[:], unknown1)

	if d.OnAirDisplay, err = readByteEnum(op, "OnAirDisplay", r, OnAirDisplayOff, OnAirDisplayOn); err != nil {
		return nil, err
	}
	if d.LCDBrightness, err = readByteEnum(op, "LCDBrightness", r,
		LCDBrightnessOne, LCDBrightnessTwo, LCDBrightnessThree, LCDBrightnessFour, LCDBrightnessFive); err != nil {
		return nil, err
	}
	if d.Quantize, err = readByteEnum(op, "Quantize", r, QuantizeOff, QuantizeOn); err != nil {
		return nil, err
	}
	if d.AutoCueLevel, err = readByteEnum(op, "AutoCueLevel", r,
		AutoCueLevelMinus36dB, AutoCueLevelMinus42dB, AutoCueLevelMinus48dB, AutoCueLevelMinus54dB,
		AutoCueLevelMinus60dB, AutoCueLevelMinus66dB, AutoCueLevelMinus72dB, AutoCueLevelMinus78dB, AutoCueLevelMemory); err != nil {
		return nil, err
	}
	if d.Language, err = readByteEnum(op, "Language", r,
		LanguageEnglish, LanguageFrench, LanguageGerman, LanguageItalian, LanguageDutch, LanguageSpanish,
		LanguageRussian, LanguageKorean, LanguageChineseSimplified, LanguageChineseTraditional, LanguageJapanese,
		LanguagePortuguese, LanguageSwedish, LanguageCzech, LanguageHungarian, LanguageDanish, LanguageGreek, LanguageTurkish); err != nil {
		return nil, err
	}
	if d.Unknown2, err = binutil.ReadU8(r); err != nil {
		return nil, rkerr.Structural(op, -1, err)
	}
	if d.JogRingBrightness, err = readByteEnum(op, "JogRingBrightness", r, JogRingBrightnessOff, JogRingBrightnessDark, JogRingBrightnessBright); err != nil {
		return nil, err
	}
	if d.JogRingIndicator, err = readByteEnum(op, "JogRingIndicator", r, JogRingIndicatorOff, JogRingIndicatorOn); err != nil {
		return nil, err
	}
	if d.SlipFlashing, err = readByteEnum(op, "SlipFlashing", r, SlipFlashingOff, SlipFlashingOn); err != nil {
		return nil, err
	}
	unknown3, err := binutil.ReadBytes(r, 3)
	if err != nil {
		return nil, rkerr.Structural(op, -1, err)
	}
	copy(d.Unknown3[:], unknown3)

	if d.DiscSlotIllumination, err = readByteEnum(op, "DiscSlotIllumination", r, DiscSlotIlluminationOff, DiscSlotIlluminationDark, DiscSlotIlluminationBright); err != nil {
		return nil, err
	}
	if d.EjectLock, err = readByteEnum(op, "EjectLock", r, EjectLockUnlock, EjectLockLock); err != nil {
		return nil, err
	}
	if d.Sync, err = readByteEnum(op, "Sync", r, SyncOff, SyncOn); err != nil {
		return nil, err
	}
	if d.PlayMode, err = readByteEnum(op, "PlayMode", r, PlayModeContinue, PlayModeSingle); err != nil {
		return nil, err
	}
	if d.QuantizeBeatValue, err = readByteEnum(op, "QuantizeBeatValue", r,
		QuantizeBeatValueFullBeat, QuantizeBeatValueHalfBeat, QuantizeBeatValueQuarterBeat, QuantizeBeatValueEighthBeat); err != nil {
		return nil, err
	}
	if d.HotCueAutoLoad, err = readByteEnum(op, "HotCueAutoLoad", r, HotCueAutoLoadOff, HotCueAutoLoadOn, HotCueAutoLoadRekordboxSetting); err != nil {
		return nil, err
	}
	if d.HotCueColor, err = readByteEnum(op, "HotCueColor", r, HotCueColorOff, HotCueColorOn); err != nil {
		return nil, err
	}
	if err := assertZero(op, r, 2); err != nil {
		return nil, err
	}
	if d.NeedleLock, err = readByteEnum(op, "NeedleLock", r, NeedleLockUnlock, NeedleLockLock); err != nil {
		return nil, err
	}
	if err := assertZero(op, r, 2); err != nil {
		return nil, err
	}
	if d.TimeMode, err = readByteEnum(op, "TimeMode", r, TimeModeElapsed, TimeModeRemain); err != nil {
		return nil, err
	}
	if d.JogMode, err = readByteEnum(op, "JogMode", r, JogModeVinyl, JogModeCDJ); err != nil {
		return nil, err
	}
	if d.AutoCue, err = readByteEnum(op, "AutoCue", r, AutoCueOff, AutoCueOn); err != nil {
		return nil, err
	}
	if d.MasterTempo, err = readByteEnum(op, "MasterTempo", r, MasterTempoOff, MasterTempoOn); err != nil {
		return nil, err
	}
	if d.TempoRange, err = readByteEnum(op, "TempoRange", r,
		TempoRangeSixPercent, TempoRangeTenPercent, TempoRangeSixteenPercent, TempoRangeWide); err != nil {
		return nil, err
	}
	if d.PhaseMeter, err = readByteEnum(op, "PhaseMeter", r, PhaseMeterType1, PhaseMeterType2); err != nil {
		return nil, err
	}
	if err := assertZero(op, r, 2); err != nil {
		return nil, err
	}
	return d, nil
}

func (d MySetting) WriteTo(w io.Writer) error {
	if _, err := w.Write(d.Unknown1[:]); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.OnAirDisplay); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.LCDBrightness); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.Quantize); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.AutoCueLevel); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.Language); err != nil {
		return err
	}
	if err := binutil.WriteU8(w, d.Unknown2); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.JogRingBrightness); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.JogRingIndicator); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.SlipFlashing); err != nil {
		return err
	}
	if _, err := w.Write(d.Unknown3[:]); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.DiscSlotIllumination); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.EjectLock); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.Sync); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.PlayMode); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.QuantizeBeatValue); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.HotCueAutoLoad); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.HotCueColor); err != nil {
		return err
	}
	if err := binutil.PadZero(w, 2); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.NeedleLock); err != nil {
		return err
	}
	if err := binutil.PadZero(w, 2); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.TimeMode); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.JogMode); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.AutoCue); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.MasterTempo); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.TempoRange); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.PhaseMeter); err != nil {
		return err
	}
	return binutil.PadZero(w, 2)
}

// MySetting2 is the MYSETTING2.DAT payload: display and jog-wheel
// preferences.
type MySetting2 struct {
	VinylSpeedAdjust    VinylSpeedAdjust
	JogDisplayMode      JogDisplayMode
	PadButtonBrightness PadButtonBrightness
	JogLCDBrightness    JogLCDBrightness
	WaveformDivisions   WaveformDivisions
	Unknown1            [5]byte
	Waveform            Waveform
	Unknown2            uint8
	BeatJumpBeatValue   BeatJumpBeatValue
	Unknown3            [27]byte
}

func (MySetting2) FileKind() FileKind { return FileMySetting2 }

func readMySetting2(r io.Reader) (Data, error) {
	const op = "setting.readMySetting2"
	var d MySetting2
	var err error

	if d.VinylSpeedAdjust, err = readByteEnum(op, "VinylSpeedAdjust", r,
		VinylSpeedAdjustTouchRelease, VinylSpeedAdjustTouch, VinylSpeedAdjustRelease); err != nil {
		return nil, err
	}
	if d.JogDisplayMode, err = readByteEnum(op, "JogDisplayMode", r,
		JogDisplayModeAuto, JogDisplayModeInfo, JogDisplayModeSimple, JogDisplayModeArtwork); err != nil {
		return nil, err
	}
	if d.PadButtonBrightness, err = readByteEnum(op, "PadButtonBrightness", r,
		PadButtonBrightnessOne, PadButtonBrightnessTwo, PadButtonBrightnessThree, PadButtonBrightnessFour, PadButtonBrightnessFive); err != nil {
		return nil, err
	}
	if d.JogLCDBrightness, err = readByteEnum(op, "JogLCDBrightness", r,
		JogLCDBrightnessOne, JogLCDBrightnessTwo, JogLCDBrightnessThree, JogLCDBrightnessFour, JogLCDBrightnessFive); err != nil {
		return nil, err
	}
	if d.WaveformDivisions, err = readByteEnum(op, "WaveformDivisions", r, WaveformDivisionsTimeScale, WaveformDivisionsPhrase); err != nil {
		return nil, err
	}
	if err := assertZero(op, r, 5); err != nil {
		return nil, err
	}
	if d.Waveform, err = readByteEnum(op, "Waveform", r, WaveformWaveform, WaveformPhaseMeter); err != nil {
		return nil, err
	}
	if d.Unknown2, err = binutil.ReadU8(r); err != nil {
		return nil, rkerr.Structural(op, -1, err)
	}
	if d.BeatJumpBeatValue, err = readByteEnum(op, "BeatJumpBeatValue", r,
		BeatJumpBeatValueHalfBeat, BeatJumpBeatValueOneBeat, BeatJumpBeatValueTwoBeat, BeatJumpBeatValueFourBeat,
		BeatJumpBeatValueEightBeat, BeatJumpBeatValueSixteenBeat, BeatJumpBeatValueThirtytwoBeat, BeatJumpBeatValueSixtyfourBeat); err != nil {
		return nil, err
	}
	if err := assertZero(op, r, 27); err != nil {
		return nil, err
	}
	return d, nil
}

func (d MySetting2) WriteTo(w io.Writer) error {
	if err := writeByteEnum(w, d.VinylSpeedAdjust); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.JogDisplayMode); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.PadButtonBrightness); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.JogLCDBrightness); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.WaveformDivisions); err != nil {
		return err
	}
	if err := binutil.PadZero(w, 5); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.Waveform); err != nil {
		return err
	}
	if err := binutil.WriteU8(w, d.Unknown2); err != nil {
		return err
	}
	if err := writeByteEnum(w, d.BeatJumpBeatValue); err != nil {
		return err
	}
	return binutil.PadZero(w, 27)
}
