package setting

// Factory-default payloads, matching Rekordbox's documented "reset to
// factory defaults" values for each settings page. Constructible without
// reading a file, per §6.3.

// DefaultMySetting returns MYSETTING.DAT's factory-default payload.
func DefaultMySetting() MySetting {
	return MySetting{
		OnAirDisplay:         OnAirDisplayOn,
		LCDBrightness:        LCDBrightnessThree,
		Quantize:             QuantizeOn,
		AutoCueLevel:         AutoCueLevelMemory,
		Language:             LanguageEnglish,
		JogRingBrightness:    JogRingBrightnessBright,
		JogRingIndicator:     JogRingIndicatorOn,
		SlipFlashing:         SlipFlashingOn,
		DiscSlotIllumination: DiscSlotIlluminationBright,
		EjectLock:            EjectLockUnlock,
		Sync:                 SyncOff,
		PlayMode:             PlayModeContinue,
		QuantizeBeatValue:    QuantizeBeatValueFullBeat,
		HotCueAutoLoad:       HotCueAutoLoadOn,
		HotCueColor:          HotCueColorOn,
		NeedleLock:           NeedleLockLock,
		TimeMode:             TimeModeRemain,
		JogMode:              JogModeVinyl,
		AutoCue:              AutoCueOn,
		MasterTempo:          MasterTempoOff,
		TempoRange:           TempoRangeTenPercent,
		PhaseMeter:           PhaseMeterType1,
	}
}

// DefaultMySetting2 returns MYSETTING2.DAT's factory-default payload.
func DefaultMySetting2() MySetting2 {
	return MySetting2{
		VinylSpeedAdjust:    VinylSpeedAdjustTouch,
		JogDisplayMode:      JogDisplayModeAuto,
		PadButtonBrightness: PadButtonBrightnessThree,
		JogLCDBrightness:    JogLCDBrightnessThree,
		WaveformDivisions:   WaveformDivisionsPhrase,
		Waveform:            WaveformWaveform,
		BeatJumpBeatValue:   BeatJumpBeatValueOneBeat,
	}
}

// DefaultDJMMySetting returns DJMMYSETTING.DAT's factory-default payload.
func DefaultDJMMySetting() DJMMySetting {
	return DJMMySetting{
		ChannelFaderCurve:          ChannelFaderCurveSteepTop,
		CrossfaderCurve:            CrossfaderCurveConstantPower,
		HeadphonesPreEQ:            HeadphonesPreEQPostEQ,
		HeadphonesMonoSplit:        HeadphonesMonoSplitStereo,
		BeatFXQuantize:             BeatFXQuantizeOn,
		MicLowCut:                 MicLowCutOff,
		TalkOverMode:               TalkOverModeAdvanced,
		TalkOverLevel:              TalkOverLevelMinus18dB,
		MidiChannel:                MidiChannelOne,
		MidiButtonType:             MidiButtonTypeToggle,
		DisplayBrightness:          MixerDisplayBrightnessWhite,
		IndicatorBrightness:        MixerIndicatorBrightnessThree,
		ChannelFaderCurveLongFader: ChannelFaderCurveLongFaderExponential,
	}
}
